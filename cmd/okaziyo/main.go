package main

import (
	"log"

	"okaziyo-api-io/api/internal/routers"
	"okaziyo-api-io/api/pkg/migrations"
	"okaziyo-api-io/api/pkg/util"
)

func main() {
	// Unique indexes back every duplicate-key guarantee; refuse to
	// serve without them.
	if err := migrations.Setup(util.DB.Database("okaziyo")).Run(nil); err != nil {
		log.Fatal(err)
	}

	router := routers.InitRoute()

	port := util.LoadEnvFor("PORT")
	if port == "" {
		port = "5000"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
