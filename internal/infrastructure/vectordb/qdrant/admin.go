// Package qdrant provides a VectorAdmin implementation using Qdrant.
package qdrant

import (
	"context"
	"errors"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/ersonp/qdrant-sweep/internal/infrastructure/config"
)

// Attempt labels for connection errors.
const (
	AttemptPrimary  = "primary"
	AttemptFallback = "fallback"
)

// AttemptError records a single failed connection attempt.
type AttemptError struct {
	Attempt string
	Addr    string
	Err     error
}

func (e *AttemptError) Error() string {
	return fmt.Sprintf("%s attempt at %s: %v", e.Attempt, e.Addr, e.Err)
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}

// Admin implements the VectorAdmin interface using Qdrant over gRPC.
type Admin struct {
	collections pb.CollectionsClient
	points      pb.PointsClient
	conn        *grpc.ClientConn
	addr        string
}

// Connect dials the Qdrant deployment described by cfg. It tries the
// conventional gRPC port first, then the port parsed from the configured
// address. An attempt only counts as connected once a live list-collections
// call succeeds. Both failures are returned joined so the caller can report
// each attempt.
func Connect(ctx context.Context, cfg *config.Config) (*Admin, error) {
	host, port, err := cfg.SplitAddr()
	if err != nil {
		return nil, err
	}

	primary := fmt.Sprintf("%s:%d", host, config.DefaultGRPCPort)
	admin, primaryErr := connectTo(ctx, AttemptPrimary, primary, cfg.APIKey)
	if primaryErr == nil {
		return admin, nil
	}

	if port == config.DefaultGRPCPort {
		return nil, primaryErr
	}

	fallback := fmt.Sprintf("%s:%d", host, port)
	admin, fallbackErr := connectTo(ctx, AttemptFallback, fallback, cfg.APIKey)
	if fallbackErr == nil {
		return admin, nil
	}

	return nil, errors.Join(primaryErr, fallbackErr)
}

// connectTo opens a connection to a single address and validates it with a
// list-collections call. grpc.NewClient dials lazily, so only the validation
// call proves the service is actually reachable.
func connectTo(ctx context.Context, attempt, addr, apiKey string) (*Admin, error) {
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if apiKey != "" {
		opts = append(opts, grpc.WithUnaryInterceptor(apiKeyInterceptor(apiKey)))
	}

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, &AttemptError{Attempt: attempt, Addr: addr, Err: err}
	}

	admin := &Admin{
		collections: pb.NewCollectionsClient(conn),
		points:      pb.NewPointsClient(conn),
		conn:        conn,
		addr:        addr,
	}

	if _, err := admin.ListCollections(ctx); err != nil {
		conn.Close()
		return nil, &AttemptError{Attempt: attempt, Addr: addr, Err: err}
	}

	return admin, nil
}

// apiKeyInterceptor attaches the Qdrant api-key metadata to every call.
func apiKeyInterceptor(apiKey string) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		ctx = metadata.AppendToOutgoingContext(ctx, "api-key", apiKey)
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}

// Addr returns the address of the attempt that succeeded.
func (a *Admin) Addr() string {
	return a.addr
}

// Close closes the gRPC connection.
func (a *Admin) Close() error {
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}

// ListCollections returns the names of all collections.
func (a *Admin) ListCollections(ctx context.Context) ([]string, error) {
	resp, err := a.collections.List(ctx, &pb.ListCollectionsRequest{})
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	names := make([]string, 0, len(resp.Collections))
	for _, col := range resp.Collections {
		names = append(names, col.Name)
	}

	return names, nil
}

// CollectionPointCount returns the current number of points in a collection.
func (a *Admin) CollectionPointCount(ctx context.Context, name string) (uint64, error) {
	resp, err := a.collections.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: name,
	})
	if err != nil {
		return 0, fmt.Errorf("getting collection info: %w", err)
	}

	if resp.Result.PointsCount == nil {
		return 0, nil
	}

	return *resp.Result.PointsCount, nil
}

// ClearCollection removes all points from a collection using a match-all
// filter, keeping the collection itself.
func (a *Admin) ClearCollection(ctx context.Context, name string) error {
	_, err := a.points.Delete(ctx, &pb.DeletePoints{
		CollectionName: name,
		Points: &pb.PointsSelector{
			PointsSelectorOneOf: &pb.PointsSelector_Filter{
				Filter: &pb.Filter{},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("deleting all points: %w", err)
	}

	return nil
}

// DeleteCollection removes the collection entirely.
func (a *Admin) DeleteCollection(ctx context.Context, name string) error {
	_, err := a.collections.Delete(ctx, &pb.DeleteCollection{
		CollectionName: name,
	})
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}

	return nil
}
