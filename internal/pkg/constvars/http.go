package constvars

const (
	MIMETextPlain       = "text/plain"
	MIMEApplicationJSON = "application/json"
	MIMEApplicationPDF  = "application/pdf"
	MIMEApplicationDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEMultipartForm   = "multipart/form-data"
	MIMEImagePrefix     = "image/"
)

const (
	StatusOK       = 200
	StatusCreated  = 201
	StatusAccepted = 202

	StatusBadRequest           = 400
	StatusUnauthorized         = 401
	StatusForbidden            = 403
	StatusNotFound             = 404
	StatusConflict             = 409
	StatusRequestEntityTooLarge = 413
	StatusUnsupportedMediaType = 415
	StatusUnprocessableEntity  = 422
	StatusTooManyRequests      = 429

	StatusInternalServerError = 500
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderContentType = "Content-Type"
	HeaderXRequestID  = "X-Request-ID"
)

const (
	URLParamPatientID    = "patientID"
	URLParamPackageID    = "packageID"
	URLParamDefinitionID = "definitionID"
	URLParamLabel        = "label"
)
