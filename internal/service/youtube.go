package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rapidhub/rapidhub/internal/rapidapi"
	"github.com/rapidhub/rapidhub/pkg/model"
	"go.uber.org/zap"
)

const resourceYouTube = "YoutubeMP3"

// MP3Store is the persistence surface the youtube service needs.
type MP3Store interface {
	InsertMP3(ctx context.Context, m *model.MP3) (*model.MP3, error)
	ListMP3s(ctx context.Context) ([]model.MP3, error)
}

// MediaClient is the slice of the RapidAPI client the youtube service uses.
type MediaClient interface {
	VideoDetails(ctx context.Context, videoID string) (*rapidapi.VideoDetailsResponse, error)
	DownloadAudio(ctx context.Context, videoID, quality string) (io.ReadCloser, error)
}

type YouTubeService struct {
	store  MP3Store
	client MediaClient
	logger *zap.Logger
}

func NewYouTubeService(store MP3Store, client MediaClient, logger *zap.Logger) *YouTubeService {
	return &YouTubeService{store: store, client: client, logger: logger}
}

// FetchInfo retrieves video metadata and persists an MP3 record for it.
func (s *YouTubeService) FetchInfo(ctx context.Context, videoID, quality string) (*model.MP3, error) {
	details, err := s.client.VideoDetails(ctx, videoID)
	if err != nil {
		return nil, err
	}

	record := &model.MP3{
		Title:      details.Title,
		Link:       "https://www.youtube.com/watch?v=" + videoID,
		VideoID:    videoID,
		Quality:    quality,
		Thumbnail:  firstThumbnail(details.Thumbnails, videoID),
		Duration:   details.Duration,
		SearchDate: time.Now().Format(time.RFC3339),
	}
	if record.Title == "" {
		record.Title = "YouTube video " + videoID
	}
	if record.Duration == "" {
		record.Duration = "Unknown"
	}

	saved, err := s.store.InsertMP3(ctx, record)
	if err != nil {
		return nil, storeError(resourceYouTube, err)
	}
	s.logger.Info("stored mp3 metadata", zap.String("video_id", videoID), zap.String("quality", quality))
	return saved, nil
}

// Download persists metadata first and only then requests the byte stream;
// if persistence fails the stream is never fetched. The caller must Close
// the returned stream.
func (s *YouTubeService) Download(ctx context.Context, videoID, quality string) (*model.MP3, io.ReadCloser, error) {
	saved, err := s.FetchInfo(ctx, videoID, quality)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.client.DownloadAudio(ctx, videoID, quality)
	if err != nil {
		return nil, nil, err
	}
	return saved, stream, nil
}

func (s *YouTubeService) ListAll(ctx context.Context) ([]model.MP3, error) {
	return s.store.ListMP3s(ctx)
}

func firstThumbnail(thumbs []rapidapi.Thumbnail, videoID string) string {
	for _, t := range thumbs {
		if t.URL != "" {
			return t.URL
		}
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/default.jpg", videoID)
}
