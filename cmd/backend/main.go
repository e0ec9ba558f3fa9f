package main

import (
	"log"

	"github.com/Ninja-cloud-sorce/back-end/internal/pkg"
)

// @title AI Resume Assistant
// @version 0.2.0
// @description Backend API for resume analysis, optimization, cover letter generation and file export
// @host localhost:8000
// @BasePath /

func main() {
	log.Println("Application start!")
	pkg.App()
	log.Println("Application terminated!")
}
