package rapidapi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/rapidhub/rapidhub/pkg/apierror"
)

const resourceYouTube = "YoutubeMP3"

// VideoDetailsResponse is the media downloader /v2/video/details payload.
// Only the fields the MP3 record needs are mapped.
type VideoDetailsResponse struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	ChannelTitle string      `json:"channelTitle"`
	Duration     string      `json:"duration"`
	Thumbnails   []Thumbnail `json:"thumbnails"`
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// VideoDetails fetches metadata for a video.
func (c *Client) VideoDetails(ctx context.Context, videoID string) (*VideoDetailsResponse, error) {
	params := url.Values{}
	params.Set("videoId", videoID)
	params.Set("urlAccess", "normal")
	params.Set("videos", "auto")
	params.Set("audios", "auto")

	body, err := c.getJSON(ctx, resourceYouTube, c.youtubeHost, "/v2/video/details", params, "")
	if err != nil {
		return nil, err
	}

	var res VideoDetailsResponse
	if err := decode(resourceYouTube, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DownloadAudio streams the audio for a video at the requested quality. The
// caller owns the returned body and must Close it. A successful response
// with zero bytes is surfaced as EMPTY_RESPONSE instead of an empty stream.
func (c *Client) DownloadAudio(ctx context.Context, videoID, quality string) (io.ReadCloser, error) {
	params := url.Values{}
	params.Set("videoId", videoID)
	params.Set("quality", quality)

	reqURL := &url.URL{Scheme: "https", Host: c.youtubeHost, Path: "/v2/video/download", RawQuery: params.Encode()}

	ctx, cancel := context.WithTimeout(ctx, c.downloadTimeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		cancel()
		return nil, apierror.Wrap(resourceYouTube, apierror.CodeEncodingError, "failed to build download request", err)
	}
	c.setHeaders(req, c.youtubeHost)
	req.Header.Set("Accept", "application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apierror.Wrap(resourceYouTube, apierror.CodeTimeout, "download exceeded deadline", err)
		}
		return nil, apierror.Wrap(resourceYouTube, apierror.CodeDownloadError, "failed to reach the download API", err)
	}

	if err := statusError(resourceYouTube, resp.StatusCode); err != nil {
		resp.Body.Close()
		cancel()
		return nil, err
	}

	// Peek one byte so a 2xx with no payload fails here rather than
	// streaming zero bytes to the client.
	var first [1]byte
	n, err := io.ReadFull(resp.Body, first[:])
	if n == 0 {
		resp.Body.Close()
		cancel()
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, apierror.New(resourceYouTube, apierror.CodeEmptyResponse, "upstream returned a successful response with no data")
		}
		return nil, apierror.Wrap(resourceYouTube, apierror.CodeDownloadError, "failed to read the download stream", err)
	}

	return &cancelReadCloser{
		Reader: io.MultiReader(bytes.NewReader(first[:]), resp.Body),
		closer: resp.Body,
		cancel: cancel,
	}, nil
}

type cancelReadCloser struct {
	io.Reader
	closer io.Closer
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	c.cancel()
	return c.closer.Close()
}
