package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gotomicro/ego/core/elog"

	"gitee.com/flycash/varsling-platform/internal/domain"
	"gitee.com/flycash/varsling-platform/internal/errs"
)

// Klient 第三方通知网关。返回 error 表示传输层故障（超时、5xx），
// 上层按可重试失败处理；业务层面的失败体现在 AltinnResponse 里
//
//go:generate mockgen -source=./klient.go -package=gatewaymocks -destination=./mocks/klient.mock.go -typed Klient
type Klient interface {
	Send(ctx context.Context, varsel domain.EksternVarsel) (domain.AltinnResponse, error)
}

type altinnKlient struct {
	client *resty.Client
	logger *elog.Component
}

// sendRequest 网关的出站载荷
type sendRequest struct {
	VarselID      string `json:"varselId"`
	Type          string `json:"type"`
	Mottaker      string `json:"mottaker"`
	FnrEllerOrgnr string `json:"fnrEllerOrgnr,omitempty"`
	Tittel        string `json:"tittel,omitempty"`
	Innhold       string `json:"innhold"`
}

type sendResponse struct {
	Status      string `json:"status"`
	Feilkode    string `json:"feilkode,omitempty"`
	Feilmelding string `json:"feilmelding,omitempty"`
}

func NewAltinnKlient(baseURL, apiKey string, timeout time.Duration) Klient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("ApiKey", apiKey)
	return &altinnKlient{
		client: client,
		logger: elog.DefaultLogger,
	}
}

func (k *altinnKlient) Send(ctx context.Context, varsel domain.EksternVarsel) (domain.AltinnResponse, error) {
	req := sendRequest{
		VarselID:      varsel.VarselID.String(),
		Type:          varsel.VarselType.String(),
		Mottaker:      varsel.Mottaker(),
		FnrEllerOrgnr: varsel.FnrEllerOrgnr,
	}
	switch varsel.VarselType {
	case domain.VarselTypeSMS:
		req.Innhold = varsel.SmsTekst
	case domain.VarselTypeEpost:
		req.Tittel = varsel.EpostTittel
		req.Innhold = varsel.EpostBody
	default:
		return domain.AltinnResponse{}, fmt.Errorf("%w: VarselType = %q", errs.ErrInvalidParameter, varsel.VarselType)
	}

	var body sendResponse
	resp, err := k.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&body).
		SetError(&body).
		Post("/notification/send")
	if err != nil {
		return domain.AltinnResponse{}, fmt.Errorf("%w: %w", errs.ErrSendVarselFailed, err)
	}

	// 5xx 当作传输层故障交给重试，4xx 带错误码的是网关的业务判定
	if resp.StatusCode() >= 500 {
		return domain.AltinnResponse{}, fmt.Errorf("%w: 网关返回 %d", errs.ErrSendVarselFailed, resp.StatusCode())
	}

	raa := raaOrNull(string(resp.Body()))
	if body.Feilkode != "" || (resp.IsError() && body.Status != "OK") {
		return domain.AltinnResponse{
			Ok:          false,
			Raa:         raa,
			Feilkode:    body.Feilkode,
			Feilmelding: body.Feilmelding,
		}, nil
	}

	return domain.AltinnResponse{
		Ok:  true,
		Raa: raa,
	}, nil
}

// 确保原始响应总可以作为 JSON 存进数据库
func raaOrNull(raa string) string {
	if json.Valid([]byte(raa)) {
		return raa
	}
	return "null"
}
