package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitee.com/flycash/varsling-platform/internal/domain"
)

func TestKlassifiser(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		resp domain.AltinnResponse
		want Utfall
	}{
		{
			name: "成功响应",
			resp: domain.AltinnResponse{Ok: true},
			want: UtfallOK,
		},
		{
			name: "30304 缺少联系信息",
			resp: domain.AltinnResponse{Feilkode: "30304"},
			want: UtfallManglerKofuvi,
		},
		{
			name: "30307 缺少联系信息",
			resp: domain.AltinnResponse{Feilkode: "30307"},
			want: UtfallManglerKofuvi,
		},
		{
			name: "30308 缺少联系信息",
			resp: domain.AltinnResponse{Feilkode: "30308"},
			want: UtfallManglerKofuvi,
		},
		{
			name: "30323 缺少联系信息",
			resp: domain.AltinnResponse{Feilkode: "30323"},
			want: UtfallManglerKofuvi,
		},
		{
			name: "0 网关内部错误可重试",
			resp: domain.AltinnResponse{Feilkode: "0"},
			want: UtfallRetryable,
		},
		{
			name: "未映射的错误码按不可重试处理",
			resp: domain.AltinnResponse{Feilkode: "42", Feilmelding: "oops"},
			want: UtfallAnnenFeil,
		},
		{
			name: "空错误码的失败响应按不可重试处理",
			resp: domain.AltinnResponse{Ok: false},
			want: UtfallAnnenFeil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			// 分类必须是确定性的，重复分类结果一致
			for i := 0; i < 3; i++ {
				assert.Equal(t, tc.want, Klassifiser(tc.resp))
			}
		})
	}
}

func TestEksportStatus(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.VarslingStatusManglerKofuvi, EksportStatus("30308"))
	assert.Equal(t, domain.VarslingStatusAnnenFeil, EksportStatus("42"))
	assert.Equal(t, domain.VarslingStatusAnnenFeil, EksportStatus(""))
}
