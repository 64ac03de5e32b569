package v1

// Errors
const (
	UnknownErrorCode    = 0
	UnknownErrorMessage = "unknown error"

	UserNotFoundCode                = 1002
	UserNotFoundMessage             = "user not found"
	InvalidVerificationCodeCode     = 1101
	InvalidVerificationCodeMessage  = "verification code incorrect or expired"
	VerificationCodeDeliveryCode    = 1102
	VerificationCodeDeliveryMessage = "verification code could not be delivered"
	UserConflictCode                = 1103
	UserConflictMessage             = "login conflict, please retry"
	UserPersistenceCode             = 1104
	UserPersistenceMessage          = "user could not be saved, request a new code"
	StoreUnavailableCode            = 1105
	StoreUnavailableMessage         = "storage temporarily unavailable"
	UnauthorizedCode                = 1201
	UnauthorizedMessage             = "unauthorized"

	ProjectNotFoundCode     = 2001
	ProjectNotFoundMessage  = "project not found"
	InvalidProjectIDCode    = 2002
	InvalidProjectIDMessage = "invalid project id"
	InvalidGeoJSONCode      = 2101
	InvalidGeoJSONMessage   = "body is not a geojson feature collection"

	AssistantDisabledCode    = 3001
	AssistantDisabledMessage = "assistant is disabled"
	AssistantFailedCode      = 3002
	AssistantFailedMessage   = "assistant failed to answer"

	InvalidRequestBodyCode    = 6001
	InvalidRequestBodyMessage = "invalid request body"
)

type ErrorCode int
type ErrorMessage string

type ErrorStruct struct {
	ErrorCode    `json:"error_code"`
	ErrorMessage `json:"error_message"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	ErrorCode    int               `json:"error_code"`
	ErrorMessage string            `json:"error_message"`
	Errors       []ValidationError `json:"validation_errors"`
}

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}

var errorMessages = map[ErrorCode]ErrorMessage{
	UserNotFoundCode:             UserNotFoundMessage,
	InvalidVerificationCodeCode:  InvalidVerificationCodeMessage,
	VerificationCodeDeliveryCode: VerificationCodeDeliveryMessage,
	UserConflictCode:             UserConflictMessage,
	UserPersistenceCode:          UserPersistenceMessage,
	StoreUnavailableCode:         StoreUnavailableMessage,
	UnauthorizedCode:             UnauthorizedMessage,
	ProjectNotFoundCode:          ProjectNotFoundMessage,
	InvalidProjectIDCode:         InvalidProjectIDMessage,
	InvalidGeoJSONCode:           InvalidGeoJSONMessage,
	AssistantDisabledCode:        AssistantDisabledMessage,
	AssistantFailedCode:          AssistantFailedMessage,
	InvalidRequestBodyCode:       InvalidRequestBodyMessage,
}

func getErrorStruct(code ErrorCode) *ErrorStruct {
	errorStruct := &ErrorStruct{
		ErrorCode:    UnknownErrorCode,
		ErrorMessage: UnknownErrorMessage,
	}

	if message, ok := errorMessages[code]; ok {
		errorStruct.ErrorCode = code
		errorStruct.ErrorMessage = message
	}

	return errorStruct
}
