package routes

import (
	"net/http"

	"folio/auth"
	"folio/contact"
	"folio/crud"
	"folio/entities"
	"folio/middleware"
	"folio/profile"
	"folio/ratelim"

	"github.com/julienschmidt/httprouter"
)

// addResource wires one entity under its base path: reads are public,
// writes sit behind the session middleware. Reviews and technologies are
// list-only resources, so they skip the by-id read.
func addResource(router *httprouter.Router, base string, h crud.Handler, withGetByID bool) {
	router.GET(base, h.List)
	if withGetByID {
		router.GET(base+"/:id", h.GetByID)
	}
	router.POST(base, middleware.Authenticate(h.Create))
	router.PUT(base+"/:id", middleware.Authenticate(h.Update))
	router.DELETE(base+"/:id", middleware.Authenticate(h.Delete))
}

func AddPortfolioRoutes(router *httprouter.Router) {
	addResource(router, "/api/blogs", entities.Blogs, true)
	addResource(router, "/api/certifications", entities.Certifications, true)
	addResource(router, "/api/projects", entities.Projects, true)
	addResource(router, "/api/reviews", entities.Reviews, false)
	addResource(router, "/api/technologies", entities.Technologies, false)
}

func AddAuthRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/register", rateLimiter.Limit(auth.Register))
	router.POST("/api/login", rateLimiter.Limit(auth.Login))
	router.GET("/api/logout", auth.Logout)
	router.GET("/api/me", middleware.Authenticate(auth.Me))
	router.PUT("/api/profileimage", middleware.Authenticate(profile.UpdateProfileImage))
	router.GET("/api/aboutimage", profile.AboutImage)
}

func AddContactRoutes(router *httprouter.Router, rateLimiter *ratelim.RateLimiter) {
	router.POST("/api/contact/send-email", rateLimiter.Limit(contact.SendEmail))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}
