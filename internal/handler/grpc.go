package handler

import (
	"context"
	"errors"

	"github.com/MikhailRaia/shortlink/internal/proto"
	"github.com/MikhailRaia/shortlink/internal/service"
	"github.com/MikhailRaia/shortlink/internal/storage"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type ShortlinkGRPCServer struct {
	proto.UnimplementedShortlinkServiceServer
	urlService URLService
}

func NewShortlinkGRPCServer(urlService URLService) *ShortlinkGRPCServer {
	return &ShortlinkGRPCServer{
		urlService: urlService,
	}
}

func (s *ShortlinkGRPCServer) Shorten(ctx context.Context, req *proto.ShortenRequest) (*proto.ShortenResponse, error) {
	shortURL, err := s.urlService.ShortenURL(ctx, req.Url, "")
	if err != nil {
		if errors.Is(err, service.ErrMissingURL) {
			return nil, status.Error(codes.InvalidArgument, "url is required")
		}
		log.Error().Err(err).Msg("Failed to shorten URL over gRPC")
		return nil, status.Error(codes.Internal, "failed to shorten URL")
	}

	return &proto.ShortenResponse{ShortUrl: shortURL}, nil
}

func (s *ShortlinkGRPCServer) Resolve(ctx context.Context, req *proto.ResolveRequest) (*proto.ResolveResponse, error) {
	if req.Code == "" {
		return nil, status.Error(codes.InvalidArgument, "code is required")
	}

	originalURL, err := s.urlService.GetOriginalURL(ctx, req.Code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "short URL not found")
		}
		log.Error().Err(err).Str("code", req.Code).Msg("Failed to resolve short code over gRPC")
		return nil, status.Error(codes.Internal, "failed to resolve short code")
	}

	return &proto.ResolveResponse{Url: originalURL}, nil
}

func (s *ShortlinkGRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := s.urlService.Ping(ctx); err != nil {
		return nil, status.Error(codes.Unavailable, "storage unavailable")
	}
	return &emptypb.Empty{}, nil
}
