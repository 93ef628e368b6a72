package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/relayforge/relayforge/ent"
	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/delivery"
)

// Wire error categories returned in the error envelope.
const (
	CategoryValidation  = "VALIDATION_ERROR"
	CategoryNotFound    = "NOT_FOUND"
	CategoryConflict    = "CONFLICT"
	CategoryUpstream    = "UPSTREAM_ERROR"
	CategoryInternal    = "INTERNAL_ERROR"
	CategoryUnavailable = "SERVICE_UNAVAILABLE"
)

// errorBody is the JSON error envelope.
type errorBody struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func respondError(c *gin.Context, status int, category, message string) {
	c.JSON(status, gin.H{"error": errorBody{Category: category, Message: message}})
}

// mapError translates service-layer errors into wire responses.
func mapError(c *gin.Context, err error) {
	if errors.Is(err, config.ErrIntegrationNotFound) || ent.IsNotFound(err) {
		respondError(c, http.StatusNotFound, CategoryNotFound, "resource not found")
		return
	}

	var de *delivery.Error
	if errors.As(err, &de) {
		switch de.Kind {
		case delivery.KindURLBlocked:
			respondError(c, http.StatusBadRequest, CategoryValidation, de.Error())
		case delivery.KindCircuitOpen:
			respondError(c, http.StatusServiceUnavailable, CategoryUnavailable, "circuit breaker is open for this integration")
		case delivery.KindTimeout, delivery.KindNetwork, delivery.KindTLS,
			delivery.KindHTTPClient, delivery.KindHTTPTransient:
			respondError(c, http.StatusBadGateway, CategoryUpstream, de.Error())
		default:
			respondError(c, http.StatusInternalServerError, CategoryInternal, de.Error())
		}
		return
	}

	slog.Error("Unexpected API error", "path", c.FullPath(), "error", err)
	respondError(c, http.StatusInternalServerError, CategoryInternal, "internal server error")
}
