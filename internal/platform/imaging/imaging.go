// Package imaging はアップロード画像の検証と正規化を実装します。
// プロフィール画像とレシピ画像の両方がこのバリデータを通り、
// ストアに保存されるのは常にバリデータの出力です。
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	"golang.org/x/image/draw"

	"cookcal_backend/internal/domain/apperr"
)

const (
	// MaxImageBytes はアップロードの上限バイト数です（2.7MB + オブジェクトオーバーヘッド）。
	MaxImageBytes = 2831233
	// MaxImageDim は1辺あたりの最大ピクセル数です。超過分は縮小されます。
	MaxImageDim = 1024
)

// Normalize は画像バイト列を検証し、必要なら縮小して返します。
// 検証は順に、(1) デコード可能か、(2) PNG/JPEGか、(3) バイト数上限、
// (4) ピクセル寸法上限。寸法超過時はアスペクト比を保って縮小し、
// 元のフォーマットで再エンコードします。準拠済みの入力はそのまま返すため、
// 自身の出力に対して冪等です。
func Normalize(data []byte) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, apperr.ErrUnsupportedMedia
	}
	if format != "png" && format != "jpeg" {
		return nil, apperr.ErrUnsupportedMedia
	}

	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("%w. Maximum upload size is %d bytes", apperr.ErrPayloadTooLarge, MaxImageBytes)
	}

	if cfg.Width <= MaxImageDim && cfg.Height <= MaxImageDim {
		return data, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperr.ErrUnsupportedMedia
	}

	nw, nh := fitDim(cfg.Width, cfg.Height)
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, dst)
	case "jpeg":
		err = jpeg.Encode(&buf, dst, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// ContentType は保存済み画像バイト列のMIMEタイプを推定します。
func ContentType(data []byte) string {
	return http.DetectContentType(data)
}

// fitDim は両辺がMaxImageDim以下に収まる縮小後の寸法を返します。
func fitDim(w, h int) (int, int) {
	scale := float64(MaxImageDim) / float64(w)
	if h > w {
		scale = float64(MaxImageDim) / float64(h)
	}
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	return nw, nh
}
