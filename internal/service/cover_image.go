package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ErrCoverNotImage 表示上传的封面文件不是可识别的图片。
var ErrCoverNotImage = errors.New("cover file is not a supported image")

// EncodeCoverImage 将本地图片编码为可直接展示的 data URI，并返回探测到的尺寸。
// 支持 png/jpeg/gif/webp。
func EncodeCoverImage(data []byte) (uri string, width, height int, err error) {
	if len(data) == 0 {
		return "", 0, 0, ErrCoverNotImage
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", 0, 0, ErrCoverNotImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", 0, 0, ErrCoverNotImage
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", contentType, encoded), cfg.Width, cfg.Height, nil
}
