package marketapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CarMarketWeb/pkg/traceid"
)

// maxErrorBody сколько байт тела ошибки читаем для сообщения
const maxErrorBody = 4 << 10

// Client клиент REST API маркетплейса.
// Каждый метод - один эндпоинт, без ретраев и кэширования.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    Metrics
}

// NewClient создает новый экземпляр клиента. metrics может быть nil.
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics Metrics) *Client {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// File файл для multipart загрузки
type File struct {
	FieldName   string
	FileName    string
	ContentType string
	Content     io.Reader
}

// call описание одного вызова API
type call struct {
	op     string
	method string
	path   string
	token  string
	query  url.Values
	body   interface{}

	// multipart
	fields map[string]string
	files  []File
}

func (c *Client) do(ctx context.Context, cl call, out interface{}) error {
	started := time.Now()

	req, err := c.newRequest(ctx, cl)
	if err != nil {
		c.metrics.ObserveUpstream(cl.op, "error", time.Since(started))
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(cl.op, "error", time.Since(started))
		c.log.Error("%s: %s %s failed: %v", cl.op, cl.method, cl.path, err)
		return fmt.Errorf("%w: %s - failed to execute request: %v", ErrInternal, cl.op, err)
	}
	defer resp.Body.Close()

	c.metrics.ObserveUpstream(cl.op, strconv.Itoa(resp.StatusCode), time.Since(started))

	if err := statusError(cl.op, resp); err != nil {
		c.log.Warn("%s: %s %s returned %d", cl.op, cl.method, cl.path, resp.StatusCode)
		return err
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Error("%s: failed to decode response: %v", cl.op, err)
		return fmt.Errorf("%w: %s - failed to decode response: %v", ErrInvalidResponse, cl.op, err)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, cl call) (*http.Request, error) {
	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)

	switch {
	case cl.fields != nil || cl.files != nil:
		buf, ct, err := encodeMultipart(cl.fields, cl.files)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - failed to encode multipart body: %v", ErrInternal, cl.op, err)
		}
		body, contentType = buf, ct
	case cl.body != nil:
		raw, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - failed to marshal request: %v", ErrInternal, cl.op, err)
		}
		body, contentType = bytes.NewReader(raw), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - failed to create request: %v", ErrInternal, cl.op, err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if cl.token != "" {
		req.Header.Set("Authorization", "Bearer "+cl.token)
	}
	if id := traceid.FromContext(ctx); id != "" {
		req.Header.Set(traceid.Header, id)
	}

	return req, nil
}

func encodeMultipart(fields map[string]string, files []File) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	for _, f := range files {
		part, err := createFormFile(mw, f)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return buf, mw.FormDataContentType(), nil
}

func createFormFile(mw *multipart.Writer, f File) (io.Writer, error) {
	if f.ContentType == "" {
		return mw.CreateFormFile(f.FieldName, f.FileName)
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, f.FieldName, f.FileName))
	header.Set("Content-Type", f.ContentType)
	return mw.CreatePart(header)
}

// statusError переводит статус ответа в ошибку пакета
func statusError(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	message := readErrorMessage(resp.Body)

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s: %s", ErrBadRequest, op, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s: %s", ErrUnauthorized, op, message)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s: %s", ErrForbidden, op, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s: %s", ErrNotFound, op, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s: %s", ErrConflict, op, message)
	default:
		return fmt.Errorf("%w: %s - unexpected status code %d: %s", ErrInvalidResponse, op, resp.StatusCode, message)
	}
}

func readErrorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))

	var payload ErrorResponse
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return string(raw)
}

func idPath(format string, ids ...int64) string {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return fmt.Sprintf(format, args...)
}
