package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"alsayed-store/internal/i18n"
	"alsayed-store/internal/middleware"
	"alsayed-store/internal/model"
	"alsayed-store/internal/validation"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// statusByCode maps domain error codes to HTTP statuses.
var statusByCode = map[string]int{
	model.ErrCodeInvalidJSON:          http.StatusBadRequest,
	model.ErrCodeMissingField:         http.StatusBadRequest,
	model.ErrCodeInvalidQuery:         http.StatusBadRequest,
	model.ErrCodeValidationFailed:     http.StatusBadRequest,
	model.ErrCodeEmptyCart:            http.StatusBadRequest,
	model.ErrCodeProductNotFound:      http.StatusNotFound,
	model.ErrCodeSizeNotFound:         http.StatusNotFound,
	model.ErrCodeOrderNotFound:        http.StatusNotFound,
	model.ErrCodeCountryNotFound:      http.StatusNotFound,
	model.ErrCodeInvalidQuantity:      http.StatusBadRequest,
	model.ErrCodeInvalidPaymentMethod: http.StatusBadRequest,
	model.ErrCodeInvalidLanguage:      http.StatusBadRequest,
	model.ErrCodeUnauthorised:         http.StatusUnauthorized,
	model.ErrCodeForbidden:            http.StatusForbidden,
}

// messageKeyByCode maps domain error codes to translation keys.
var messageKeyByCode = map[string]string{
	model.ErrCodeInvalidJSON:      "common.badRequest",
	model.ErrCodeMissingField:     "common.badRequest",
	model.ErrCodeInvalidQuery:     "common.badRequest",
	model.ErrCodeValidationFailed: "validation.failed",
	model.ErrCodeEmptyCart:        "checkout.emptyCart",
	model.ErrCodeProductNotFound:  "product.notFound",
	model.ErrCodeSizeNotFound:     "product.sizeNotFound",
	model.ErrCodeOrderNotFound:    "tracking.notFound",
	model.ErrCodeCountryNotFound:  "region.notFound",
	model.ErrCodeInvalidQuantity:  "cart.invalidQuantity",
	model.ErrCodeInvalidLanguage:  "language.invalid",
	model.ErrCodeUnauthorised:     "common.unauthorised",
	model.ErrCodeInternalError:    "common.serverError",
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response in the request language.
func writeError(w http.ResponseWriter, r *http.Request, status int, code string, tr *i18n.Translator, logger zerolog.Logger) {
	lang := middleware.LanguageFromContext(r.Context())
	logger.Warn().Str("error", code).Int("status", status).Str("path", r.URL.Path).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       localise(tr, lang, code),
		CorrelationID: chimw.GetReqID(r.Context()),
	})
}

// handleError maps err onto a response. Validation failures carry one
// localised message per field; unknown errors become a 500.
func handleError(w http.ResponseWriter, r *http.Request, err error, tr *i18n.Translator, logger zerolog.Logger) {
	lang := middleware.LanguageFromContext(r.Context())

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		logger.Debug().Err(err).Msg("validation failed")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error:         model.ErrCodeValidationFailed,
			Message:       localise(tr, lang, model.ErrCodeValidationFailed),
			Fields:        verrs.Messages(tr, lang),
			CorrelationID: chimw.GetReqID(r.Context()),
		})
		return
	}

	var derr *model.DomainError
	if errors.As(err, &derr) {
		status, ok := statusByCode[derr.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		writeError(w, r, status, derr.Code, tr, logger)
		return
	}

	logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
		Error:         model.ErrCodeInternalError,
		Message:       localise(tr, lang, model.ErrCodeInternalError),
		CorrelationID: chimw.GetReqID(r.Context()),
	})
}

func localise(tr *i18n.Translator, lang i18n.Lang, code string) string {
	key, ok := messageKeyByCode[code]
	if !ok {
		return code
	}
	return tr.T(lang, key)
}

// decodeJSON reads a JSON body, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
