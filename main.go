package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"

	"github.com/cartways/paypal-express-api/config"
	"github.com/cartways/paypal-express-api/handlers"

	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "paypal-express-api"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	mainRouter := mux.NewRouter()
	handlers.Register(mainRouter, *cfg)

	log.Info("Starting paypal-express-api service")
	err = http.ListenAndServe(cfg.BindAddr, mainRouter)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting paypal-express-api service")
}
