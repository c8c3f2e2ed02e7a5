package api

import (
	"github.com/lifeline-inc/dispatch-api/dispatch"
	"github.com/lifeline-inc/dispatch-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrCaseNotFound.Error(),
		1101: store.ErrInvalidTransition.Error(),
		1102: store.ErrHospitalNotFound.Error(),

		1200: store.ErrCaseAlreadyAccepted.Error(),
		1201: store.ErrNotificationNotPending.Error(),
		1202: dispatch.ErrInvalidRejectionReason.Error(),
		1203: store.ErrCaseNotEscalatable.Error(),

		1300: store.ErrOverrideAlreadyUsed.Error(),
		1301: store.ErrOverrideNotAllowed.Error(),

		1400: dispatch.ErrNoCandidates.Error(),
		1401: dispatch.ErrCaseDispatched.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorCaseNotFound      = errorJSON(1100)
	errorInvalidTransition = errorJSON(1101)
	errorUnknownHospital   = errorJSON(1102)

	errorCaseAlreadyAccepted    = errorJSON(1200)
	errorNotificationNotPending = errorJSON(1201)
	errorInvalidRejectionReason = errorJSON(1202)
	errorCaseNotEscalatable     = errorJSON(1203)

	errorOverrideAlreadyUsed = errorJSON(1300)
	errorOverrideNotAllowed  = errorJSON(1301)

	errorNoCandidates   = errorJSON(1400)
	errorCaseDispatched = errorJSON(1401)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
