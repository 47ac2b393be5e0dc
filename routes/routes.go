package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/dcode-github/property_listing_card/components"
	"github.com/dcode-github/property_listing_card/controllers"
	"github.com/dcode-github/property_listing_card/middleware"
	"github.com/dcode-github/property_listing_card/service"
	"github.com/dcode-github/property_listing_card/utils"
)

// Deps is everything the router hands to the controllers.
type Deps struct {
	Accounts  controllers.Accounts
	Listings  controllers.Listings
	Favorites controllers.Favorites
	Toggler   service.Toggler
	Renderer  *components.Renderer
	Tokens    *utils.TokenIssuer
	Checks    map[string]controllers.Check
	// AllowedOrigins defaults to any origin.
	AllowedOrigins []string
	SessionTTL     time.Duration
	Logger         *zap.Logger
}

func Routes(router *mux.Router, d Deps) {
	auth := middleware.NewAuth(d.Tokens, d.Logger)
	log := d.Logger

	router.HandleFunc("/healthz", controllers.Healthz(d.Checks, log)).Methods("GET")

	// Auth routes
	router.HandleFunc("/register", controllers.RegisterUser(d.Accounts, log)).Methods("POST")
	router.HandleFunc("/login", controllers.LoginUser(d.Accounts, d.SessionTTL, log)).Methods("POST")

	// Card pages, favorites marked when signed in
	listingPage := controllers.ListingPage(d.Listings, d.Renderer, log)
	propertyCard := controllers.PropertyCard(d.Listings, d.Renderer, log)
	router.Handle("/properties", auth.Optional(listingPage)).Methods("GET")
	router.Handle("/properties/{id}", auth.Optional(propertyCard)).Methods("GET")
	router.Handle("/properties/{id}/card", auth.Optional(propertyCard)).Methods("GET")

	// Routes that require authentication
	authenticated := router.PathPrefix("/api").Subrouter()
	authenticated.Use(auth.Require)

	// Property routes
	authenticated.HandleFunc("/properties", controllers.CreateProperty(d.Listings, log)).Methods("POST")
	authenticated.HandleFunc("/properties", controllers.GetAllProperties(d.Listings, log)).Methods("GET")
	authenticated.HandleFunc("/properties/{id}", controllers.GetProperty(d.Listings, log)).Methods("GET")
	authenticated.HandleFunc("/properties/{id}", controllers.UpdateProperty(d.Listings, log)).Methods("PUT")
	authenticated.HandleFunc("/properties/{id}", controllers.DeleteProperty(d.Listings, log)).Methods("DELETE")

	// Favorites routes
	authenticated.HandleFunc("/favorites", controllers.AddFavorite(d.Favorites, log)).Methods("POST")
	authenticated.HandleFunc("/favorites", controllers.GetFavorites(d.Favorites, log)).Methods("GET")
	authenticated.HandleFunc("/favorites/{id}", controllers.DeleteFavorite(d.Favorites, log)).Methods("DELETE")
	authenticated.HandleFunc("/favorites/{id}/toggle", controllers.ToggleFavorite(d.Toggler, log)).Methods("POST")
}

// Handler builds the router and wraps it in the standard middleware chain
// and CORS.
func Handler(d Deps) http.Handler {
	router := mux.NewRouter()
	Routes(router, d)

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	standard := alice.New(middleware.RecoverPanic(d.Logger), middleware.LogRequest(d.Logger), middleware.SecureHeaders, corsOptions.Handler)
	return standard.Then(router)
}
