// Package view holds the pages of the sample application, registered by
// name on a view.Engine.
package view
