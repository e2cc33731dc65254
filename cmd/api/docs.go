package main

// @title           Pixell River HR Directory API
// @version         1.0
// @description     Branch and employee directory of Pixell River Financial

// @contact.name   Pixell River HR

// @host      localhost:3000
// @BasePath  /api/v1
