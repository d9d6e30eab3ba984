package main

import (
	"log"
	"os"
	"s3organizer/cmd"
	"s3organizer/config"
	"s3organizer/pkg/utils"
)

func main() {
	cnf, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration " + err.Error())
	}
	if err := cmd.Execute(cnf); err != nil {
		utils.PrintError(err, "s3organizer")
		os.Exit(1)
	}
}
