package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/MikhailRaia/shortlink/internal/generator"
	"github.com/MikhailRaia/shortlink/internal/handler"
	"github.com/MikhailRaia/shortlink/internal/service"
	"github.com/MikhailRaia/shortlink/internal/storage"
	"github.com/MikhailRaia/shortlink/internal/storage/memory"
)

func fixedCode(code string) generator.Func {
	return func(int) (string, error) { return code, nil }
}

func ExampleHandler_RegisterRoutes_shorten() {
	store := storage.NewURLStore(memory.NewStorage(), storage.WithGenerator(fixedCode("abc123")))
	router := handler.NewHandler(service.NewURLService(store, "http://localhost:8080")).RegisterRoutes()

	req := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader(`{"url": "https://example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	fmt.Println(rr.Code)
	fmt.Print(rr.Body.String())

	// Output:
	// 200
	// {"short_url":"http://localhost:8080/abc123"}
}

func ExampleHandler_RegisterRoutes_redirect() {
	store := storage.NewURLStore(memory.NewStorage(), storage.WithGenerator(fixedCode("abc123")))
	router := handler.NewHandler(service.NewURLService(store, "http://localhost:8080")).RegisterRoutes()

	req := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader(`{"url": "https://example.com"}`))
	router.ServeHTTP(httptest.NewRecorder(), req)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/abc123", nil))

	fmt.Println(rr.Code)
	fmt.Println(rr.Header().Get("Location"))

	// Output:
	// 302
	// https://example.com
}

func ExampleHandler_RegisterRoutes_notFound() {
	store := storage.NewURLStore(memory.NewStorage())
	router := handler.NewHandler(service.NewURLService(store, "http://localhost:8080")).RegisterRoutes()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/doesnotexist", nil))

	fmt.Println(rr.Code)
	fmt.Print(rr.Body.String())

	// Output:
	// 404
	// {"error":"Short URL not found"}
}
