package email

import "log"

// Job types dispatched through the pool.
const (
	JobWelcome              = "welcome"
	JobPasswordReset        = "password_reset"
	JobPasswordResetSuccess = "password_reset_success"
)

type Job struct {
	Type string
	Data Data
}

type Worker struct {
	Jobs chan Job
	Quit chan bool
}

// WorkerPool sends mail off the request path. Handlers enqueue and
// return; a worker picks the job up and dials SMTP.
type WorkerPool struct {
	Jobs    chan Job
	Workers []Worker
}

func NewWorkerPool(size int) *WorkerPool {
	jobs := make(chan Job, size)
	workers := make([]Worker, size)

	for i := 0; i < size; i++ {
		workers[i] = Worker{
			Jobs: jobs,
			Quit: make(chan bool),
		}
	}

	return &WorkerPool{Jobs: jobs, Workers: workers}
}

func (pool *WorkerPool) Start() {
	for id, worker := range pool.Workers {
		log.Printf("email worker %d started", id)
		go worker.Start()
	}
}

func (pool *WorkerPool) Stop() {
	for id, worker := range pool.Workers {
		log.Printf("email worker %d stopped", id)
		go worker.Stop()
	}
}

func (pool *WorkerPool) Enqueue(job Job) {
	pool.Jobs <- job
}

func (w *Worker) Start() {
	for {
		select {
		case job := <-w.Jobs:
			switch job.Type {
			case JobWelcome:
				log.Printf("email: sending welcome mail to subscriber %s", job.Data.Email)
				SendSubscriberWelcomeEmail(job.Data)
			case JobPasswordReset:
				log.Printf("email: sending password reset mail to %s", job.Data.Email)
				SendPasswordResetEmail(job.Data)
			case JobPasswordResetSuccess:
				log.Printf("email: sending password reset confirmation to %s", job.Data.Email)
				SendPasswordResetSuccessfulEmail(job.Data)
			}
		case <-w.Quit:
			return
		}
	}
}

func (w *Worker) Stop() {
	w.Quit <- true
}
