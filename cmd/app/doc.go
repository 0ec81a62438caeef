// @title Todo API
// @version 1.0
// @description CRUD service for todo items.
// @BasePath /
package main
