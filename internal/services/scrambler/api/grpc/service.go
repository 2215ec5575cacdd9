// Package grpc implements the scrambler.v1 gRPC API.
package grpc

import (
	"context"
	"errors"
	"strconv"

	scramblerv1 "github.com/veilnum/veilnum/api/gen/go/scrambler/v1"
	apperrors "github.com/veilnum/veilnum/internal/platform/errors"
	"github.com/veilnum/veilnum/internal/scramble"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ScramblerService implements the scrambler.v1.ScramblerService gRPC API.
type ScramblerService struct {
	scramblerv1.UnimplementedScramblerServiceServer
	scrambler *scramble.Scrambler
}

// NewScramblerService creates a ScramblerService around a configured scrambler.
func NewScramblerService(scrambler *scramble.Scrambler) *ScramblerService {
	return &ScramblerService{scrambler: scrambler}
}

// MapIndex maps an allocation index to its scrambled decimal identifier.
func (s *ScramblerService) MapIndex(ctx context.Context, in *scramblerv1.MapIndexRequest) (*scramblerv1.MapIndexResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "map index request is required")
	}

	identifier, err := s.scrambler.MapIndex(in.GetIndex())
	if err != nil {
		if errors.Is(err, scramble.ErrIndexOutOfRange) {
			appErr := apperrors.WrapWithMetadata(
				apperrors.CodeScrambleIndexOutOfRange,
				"index exceeds identifier space",
				map[string]string{"index": strconv.FormatInt(in.GetIndex(), 10)},
				err,
			)
			return nil, apperrors.HandleError(appErr, localeFromContext(ctx))
		}
		return nil, err
	}

	return &scramblerv1.MapIndexResponse{Identifier: identifier}, nil
}

// GetTableInfo reports the deployment's scrambling configuration.
func (s *ScramblerService) GetTableInfo(ctx context.Context, in *scramblerv1.GetTableInfoRequest) (*scramblerv1.GetTableInfoResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get table info request is required")
	}

	return &scramblerv1.GetTableInfoResponse{
		BaseOffset: s.scrambler.BaseOffset(),
		Capacity:   scramble.Capacity(),
		Segments:   int32(scramble.SegmentCount()),
	}, nil
}

// localeFromContext reads the caller's preferred locale from gRPC metadata.
func localeFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return apperrors.DefaultLocale
	}
	if values := md.Get("accept-language"); len(values) > 0 {
		return values[0]
	}
	return apperrors.DefaultLocale
}
