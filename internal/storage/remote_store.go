package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// RemoteStore mengirim file ke layanan hosting gambar eksternal lewat
// multipart POST dan memakai URL permanen yang dikembalikan host.
type RemoteStore struct {
	Endpoint string // endpoint upload, termasuk api key di query kalau perlu
	Client   *http.Client
}

func NewRemoteStore(endpoint string) *RemoteStore {
	return &RemoteStore{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// respons gaya imgbb: {"data": {"url": "..."}}
type remoteUploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (s *RemoteStore) Save(filename, contentType string, size int64, body io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if _, err := io.Copy(part, body); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}

	req, err := http.NewRequest(http.MethodPost, s.Endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := s.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpload, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return "", fmt.Errorf("%w: host menolak upload (%d): %s", ErrUpload, res.StatusCode, msg)
	}

	var parsed remoteUploadResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: respons host tidak bisa dibaca: %v", ErrUpload, err)
	}
	if parsed.Data.URL == "" {
		return "", fmt.Errorf("%w: host tidak mengembalikan URL", ErrUpload)
	}
	return parsed.Data.URL, nil
}
