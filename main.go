package main

import (
	"flag"
	"paysera/config"
	"paysera/internal"
	"paysera/services"
)

func main() {

	logger := internal.NewLogger("internal", false, nil)

	configPath := flag.String("conf", "config.yml", "path to config file")
	envPath := flag.String("env", ".env", "path to optional dotenv file")
	flag.Parse()

	loaded, err := config.LoadDotEnv(*envPath)
	if err != nil {
		logger.Error("boot", err)
		return
	}
	if loaded {
		logger.Info("environment loaded from " + *envPath)
	}

	logger.Info("using config file: " + *configPath)
	conf, err := config.GetConfig(*configPath)
	if err != nil {
		logger.Error("boot", err)
		return
	}

	merchant, err := conf.Merchant.MerchantConfig()
	if err != nil {
		logger.Error("merchant config", err)
		return
	}

	var mongo services.Database
	if conf.Mongo.Enabled {
		mongo, err = internal.NewMongoClient(conf)
		if err != nil {
			logger.Error("mongo client", err)
			return
		}
		logger.Info("mongo client initialized")
	}

	payments := internal.NewPaysera(merchant)
	payments.SetPayUrl(conf.Merchant.PayUrl)

	server := internal.NewServer(conf)
	server.SetLogger(internal.NewLogger("server", conf.IsDebug, mongo))
	server.SetPaymentsService(payments)

	err = server.Start()
	if err != nil {
		logger.Error("server start", err)
		return
	}

}
