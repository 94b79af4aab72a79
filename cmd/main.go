package main

import (
	"github.com/Suchith04/Calorie-Catcher/config"
	"github.com/Suchith04/Calorie-Catcher/routes"
	"github.com/Suchith04/Calorie-Catcher/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()
	r := routes.SetupRouter()
	r.Run(":8080")
}
