package grpccontroller

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-check name of the stats service.
const ServiceName = "loganalyzer.Stats"

// Health reports SERVING once a report is available.
type Health struct {
	server *health.Server
}

func NewHealth() *Health {
	h := &Health{server: health.NewServer()}
	h.SetReady(false)
	return h
}

func (h *Health) SetReady(ready bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if ready {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(ServiceName, status)
}

// Status is the current serving status of the stats service.
func (h *Health) Status() healthpb.HealthCheckResponse_ServingStatus {
	resp, err := h.server.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		return healthpb.HealthCheckResponse_SERVICE_UNKNOWN
	}
	return resp.GetStatus()
}

func (h *Health) Shutdown() {
	h.server.Shutdown()
}

func RegisterServices(h *Health) func(s *grpc.Server) {
	return func(s *grpc.Server) {
		healthpb.RegisterHealthServer(s, h.server)
	}
}
