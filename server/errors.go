// errors.go - Abbildung von Export-Fehlern auf HTTP-Status
package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitnetmcu/mcuexport/convert"
	"github.com/bitnetmcu/mcuexport/fs/mcu"
)

var errInvalidRequest = errors.New("invalid request")

// clientErrors sind Fehler, die aus dem Inhalt des Requests stammen
var clientErrors = []error{
	mcu.ErrEmptyModel,
	mcu.ErrAlignment,
	mcu.ErrDomain,
	mcu.ErrUnsupportedScheme,
	mcu.ErrShapeMismatch,
	mcu.ErrLayerOrder,
	mcu.ErrBitWidth,
	convert.ErrUnknownFormat,
	errInvalidRequest,
}

// statusFor liefert den HTTP-Status fuer err
func statusFor(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// abortWithError beendet den Request mit {"error": ...}
func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}
