package server

import (
	"net/http"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
)

// HealthServiceName is reported as serving on the gRPC health endpoint.
const HealthServiceName = "mywhiskies.v1.Web"

// Healthz answers plain HTTP health probes.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// NewHealthHandler serves the gRPC health protocol for probes that speak it.
func NewHealthHandler() (string, http.Handler) {
	checker := grpchealth.NewStaticChecker(HealthServiceName)

	return grpchealth.NewHandler(checker, connect.WithCompressMinBytes(1024))
}

// NewReflectionHandlers lets gRPC tooling such as grpcurl discover the
// health service.
func NewReflectionHandlers() map[string]http.Handler {
	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName)

	handlers := make(map[string]http.Handler, 2)

	path, handler := grpcreflect.NewHandlerV1(reflector)
	handlers[path] = handler

	path, handler = grpcreflect.NewHandlerV1Alpha(reflector)
	handlers[path] = handler

	return handlers
}
