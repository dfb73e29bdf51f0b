package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth   = RouteApiV1 + "/auth"
	RouteSignup = RouteAuth + "/signup"
	RouteLogin  = RouteAuth + "/login"
	RouteMe     = RouteAuth + "/me"

	// files
	RouteFiles        = RouteApiV1 + "/files"
	RouteFileUpload   = RouteFiles + "/upload"
	RouteFile         = RouteFiles + "/:file_id"
	RouteFileDownload = RouteFile + "/download"

	// ops
	RouteStats   = RouteApiV1 + "/stats"
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
