// Package docs notes-api
//
// @title  Notes API
// @version 0.1.0
// @description CRUD service for short text notes.
// @host      localhost:8080
// @BasePath /
// @schemes http https
package docs

//go:generate swag init -d ../ -g docs/swagger.go -o . --outputTypes go --parseInternal
