package main

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/gmarcondes/prioriza/core"
	"github.com/gmarcondes/prioriza/core/access"
	logsvc "github.com/gmarcondes/prioriza/services/logger"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	access.InitValidators(validate, translator)
	access.LoadCommonPasswords(logsvc.NewConsoleLogger(logger))

	// start CLI
	cli := commandLine{
		validate:   validate,
		translator: translator,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
