package payment

import (
	"casino-backend/internal/config"
	"fmt"
	"net/url"
	"strconv"
)

const vietQRImageBase = "https://img.vietqr.io/image"

// VietQR builds static bank-transfer QR image URLs.
type VietQR struct {
	bankID      string
	accountNo   string
	accountName string
	template    string
}

func NewVietQR(cfg config.VietQRConfig) *VietQR {
	template := cfg.Template
	if template == "" {
		template = "compact2"
	}
	return &VietQR{
		bankID:      cfg.BankID,
		accountNo:   cfg.AccountNo,
		accountName: cfg.AccountName,
		template:    template,
	}
}

func (q *VietQR) Configured() bool {
	return q.bankID != "" && q.accountNo != ""
}

// ImageURL returns the QR image for a transfer of amount with addInfo as the transfer note.
func (q *VietQR) ImageURL(amount int64, addInfo string) string {
	params := url.Values{}
	params.Set("amount", strconv.FormatInt(amount, 10))
	params.Set("addInfo", addInfo)
	if q.accountName != "" {
		params.Set("accountName", q.accountName)
	}
	return fmt.Sprintf("%s/%s-%s-%s.png?%s", vietQRImageBase,
		url.PathEscape(q.bankID), url.PathEscape(q.accountNo), url.PathEscape(q.template), params.Encode())
}
