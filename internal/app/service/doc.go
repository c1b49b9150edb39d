// Package service holds the business services of the sample application.
package service
