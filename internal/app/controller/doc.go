// Package controller holds the HTTP controllers of the sample application.
// Controllers are built per request by the container from their constructors.
package controller
