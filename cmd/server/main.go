package main

import (
	"flag"
	"mime"
	"net/http"

	"github.com/hack-pad/gameboot/internal/log"
	"github.com/pkg/errors"
)

func main() {
	dir := flag.String("dir", "./out", "Directory containing the built page")
	addr := flag.String("addr", ":8080", "Address to listen on")
	flag.Parse()

	if err := serve(*dir, *addr); err != nil {
		log.Error(err)
	}
}

func serve(dir, addr string) error {
	handler, err := newHandler(dir)
	if err != nil {
		return err
	}
	log.Print("Serving ", dir, " on http://", addr)
	return http.ListenAndServe(addr, handler)
}

func newHandler(dir string) (http.Handler, error) {
	if err := mime.AddExtensionType(".wasm", "application/wasm"); err != nil {
		return nil, errors.Wrap(err, "Failed to register wasm content type")
	}
	return noCache(http.FileServer(http.Dir(dir))), nil
}

func noCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		resp.Header().Add("Cache-Control", "no-cache")
		next.ServeHTTP(resp, req)
	})
}
