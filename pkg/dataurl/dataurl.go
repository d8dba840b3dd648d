// Package dataurl codifica y decodifica imágenes como data URLs (RFC 2397).
// El logo del negocio se embebe así dentro del recibo para que el documento
// sea autocontenido: el PDF y el JPEG se generan sin acceso a red ni a disco.
package dataurl

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const prefix = "data:"

var ErrInvalid = errors.New("dataurl: formato inválido")

// Encode construye una data URL base64. Si mediaType está vacío, se detecta
// por el contenido.
func Encode(mediaType string, data []byte) string {
	if mediaType == "" {
		mediaType = mimetype.Detect(data).String()
	}
	return prefix + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Decode extrae el media type y los bytes de una data URL base64.
func Decode(s string) (mediaType string, data []byte, err error) {
	if !strings.HasPrefix(s, prefix) {
		return "", nil, ErrInvalid
	}
	rest := s[len(prefix):]
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalid
	}
	mediaType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return "", nil, ErrInvalid
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, ErrInvalid
	}
	return mediaType, data, nil
}
