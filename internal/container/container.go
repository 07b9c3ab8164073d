package container

import (
	"log"

	"okaziyo-api-io/api/email"
	"okaziyo-api-io/api/pkg/controllers"
	"okaziyo-api-io/api/pkg/util"
)

const mailWorkers = 4

// ServiceContainer builds the shared collaborators once at startup and
// hands them to the controllers that need them.
type ServiceContainer struct {
	Media    *util.MediaService
	MailPool *email.WorkerPool

	ItemController        *controllers.ItemController
	JobController         *controllers.JobController
	ScholarshipController *controllers.ScholarshipController
	SubscriberController  *controllers.SubscriberController
	AuthController        *controllers.AuthController
}

func NewServiceContainer() *ServiceContainer {
	media, err := util.NewMediaService()
	if err != nil {
		log.Fatal(err)
	}

	mailPool := email.NewWorkerPool(mailWorkers)
	mailPool.Start()

	return &ServiceContainer{
		Media:    media,
		MailPool: mailPool,

		ItemController:        controllers.InitItemController(media),
		JobController:         controllers.InitJobController(media),
		ScholarshipController: controllers.InitScholarshipController(media),
		SubscriberController:  controllers.InitSubscriberController(mailPool),
		AuthController:        controllers.InitAuthController(mailPool),
	}
}
