package controllers

import (
	"github.com/dukahq/duka-api/middlewares"
	"github.com/dukahq/duka-api/services"
	"github.com/dukahq/duka-api/store"
	"github.com/dukahq/duka-api/utils"
	"github.com/gin-gonic/gin"
)

// Package-level services wired once at startup (and swapped for fakes by the
// controller tests).
var (
	db          store.Store
	cartSvc     *services.CartService
	checkoutSvc *services.CheckoutService
	reviewSvc   *services.ReviewService
	reportSvc   *services.ReportService
)

// Init wires every controller to the given store.
func Init(s store.Store) {
	db = s
	cartSvc = services.NewCartService(s)
	checkoutSvc = services.NewCheckoutService(s)
	reviewSvc = services.NewReviewService(s)
	reportSvc = services.NewReportService(s)
}

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// sessionFrom pulls the claims RequireSession stored on the context.
func sessionFrom(ctx *gin.Context) (utils.SessionClaims, bool) {
	value, exists := ctx.Get(middlewares.SessionKey)
	if !exists {
		return utils.SessionClaims{}, false
	}
	claims, ok := value.(utils.SessionClaims)
	return claims, ok
}

// rebindSession reissues the session token with the new cart binding and
// sets the browser cookie alongside. The token also goes in the response
// body so header-based clients can pick it up.
func rebindSession(ctx *gin.Context, claims utils.SessionClaims) (string, error) {
	token, err := utils.SignSessionToken(claims)
	if err != nil {
		return "", err
	}
	ctx.SetCookie(middlewares.SessionCookie, token, 24*60*60, "/", "", false, true)
	return token, nil
}
