package utils

import (
	"bytes"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/pattaya-dashboard/internal/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// MIMEMsgpack - тип содержимого MessagePack ответа
const MIMEMsgpack = "application/x-msgpack"

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

type Meta struct {
	Total       int     `json:"total,omitempty"`
	DataVersion string  `json:"data_version,omitempty"`
	TimeMSec    float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	body := SuccessResponse{
		Data: data,
		Meta: meta,
	}

	if WantsMsgpack(c) {
		payload, err := EncodeMsgpack(body)
		if err != nil {
			return SendError(c, err)
		}
		c.Set(fiber.HeaderContentType, MIMEMsgpack)
		return c.Send(payload)
	}

	return c.JSON(body)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

// WantsMsgpack проверяет, запросил ли клиент MessagePack через Accept
func WantsMsgpack(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), MIMEMsgpack)
}

// EncodeMsgpack кодирует значение в MessagePack, используя json теги
func EncodeMsgpack(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeMsgpack декодирует MessagePack, закодированный EncodeMsgpack
func DecodeMsgpack(data []byte, v interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}
