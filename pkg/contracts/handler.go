// Package contracts holds the interfaces the application shell accepts,
// keeping pkg/app decoupled from the domain packages.
package contracts

import "github.com/julienschmidt/httprouter"

// Handler is a domain HTTP surface that can mount its routes.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}
