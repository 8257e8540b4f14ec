// Package testutils хелперы для прогона запросов через роутер в тестах.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
)

type RequestOptions struct {
	headers http.Header
	cookies []*http.Cookie
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest выполняет запрос к роутеру без сети и возвращает ответ рекордера.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*http.Response, error) {
	options := RequestOptions{headers: make(http.Header)}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, args.Body)
	for k, v := range options.headers {
		request.Header[k] = v
	}
	for _, cookie := range options.cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	return recorder.Result(), nil
}

// JSONBody тело запроса. Строка передается как есть, чтобы можно было слать невалидный json,
// остальное кодируется в json.
func JSONBody(payload any) (io.Reader, error) {
	switch p := payload.(type) {
	case nil:
		return nil, nil //nolint:nilnil
	case string:
		return strings.NewReader(p), nil
	default:
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		return bytes.NewReader(raw), nil
	}
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.headers.Set(name, value)
	}
}

func WithBearer(token string) func(*RequestOptions) {
	return func(o *RequestOptions) {
		if token != "" {
			o.headers.Set("Authorization", "Bearer "+token)
		}
	}
}

func WithCookies(c []*http.Cookie) func(*RequestOptions) {
	return func(o *RequestOptions) {
		o.cookies = append(o.cookies, c...)
	}
}

// MultibyteString строка из count четырехбайтовых символов: в рунах короче, чем в байтах.
func MultibyteString(count int) string {
	return strings.Repeat("😁", count)
}
