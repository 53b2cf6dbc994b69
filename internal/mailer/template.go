package mailer

import (
	"fmt"
	"html/template"
	"strings"

	db "github.com/nandafir/pkwt-BE/internal/db/sqlc"
)

const expiryAlertTemplate = `<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #667eea; color: white; padding: 20px; border-radius: 8px 8px 0 0; }
        .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 8px 8px; }
        .badge { display: inline-block; padding: 5px 15px; border-radius: 20px; font-weight: bold; margin-bottom: 15px; color: white; }
        .badge.info { background: #3b82f6; }
        .badge.warning { background: #f59e0b; }
        .badge.critical { background: #dc2626; }
        .contract-details { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #667eea; }
        .detail-label { font-weight: bold; color: #667eea; }
        .remaining-days { font-size: 32px; font-weight: bold; color: #dc2626; text-align: center; margin: 20px 0; }
        .footer { text-align: center; margin-top: 30px; color: #666; font-size: 12px; }
    </style>
</head>
<body>
<div class="container">
    <div class="header"><h2>🔔 Notifikasi PKWT</h2></div>
    <div class="content">
        <div class="badge {{.UrgencyClass}}">{{.UrgencyText}}</div>
        <p>Kontrak PKWT berikut akan segera berakhir:</p>
        <div class="contract-details">
            <div><span class="detail-label">Nama Karyawan:</span> {{.Name}}</div>
            <div><span class="detail-label">Posisi:</span> {{.Position}}</div>
            <div><span class="detail-label">Lokasi Kerja:</span> {{.WorkLocation}}</div>
            <div><span class="detail-label">No. Kontrak:</span> {{.ContractNumber}}</div>
            <div><span class="detail-label">Tanggal Berakhir:</span> {{.EndDate}}</div>
        </div>
        <div class="remaining-days">{{.RemainingDays}} Hari Tersisa</div>
        <p style="text-align: center; color: #666;">{{.CallToAction}}</p>
        <div class="footer">
            <p>Email ini dikirim secara otomatis oleh Sistem Manajemen PKWT</p>
            <p>Silakan login ke sistem untuk informasi lebih lengkap</p>
        </div>
    </div>
</div>
</body>
</html>`

var expiryAlertTmpl = template.Must(template.New("expiry_alert").Parse(expiryAlertTemplate))

type expiryAlertData struct {
	UrgencyClass   string
	UrgencyText    string
	Name           string
	Position       string
	WorkLocation   string
	ContractNumber string
	EndDate        string
	RemainingDays  int
	CallToAction   string
}

func renderExpiryAlertBody(contract db.Contract, remainingDays int) string {
	data := expiryAlertData{
		UrgencyClass:   "info",
		UrgencyText:    "Pemberitahuan",
		Name:           contract.Name,
		Position:       contract.Position,
		WorkLocation:   orDash(contract.WorkLocation),
		ContractNumber: orDash(contract.ContractNumber),
		EndDate:        contract.EndDate.Format("02 January 2006"),
		RemainingDays:  remainingDays,
		CallToAction:   "Mohon perhatikan dan rencanakan tindakan yang diperlukan.",
	}

	switch {
	case remainingDays <= 1:
		data.UrgencyClass = "critical"
		data.UrgencyText = "URGENT"
		data.CallToAction = "⚠️ Kontrak akan berakhir dalam waktu kurang dari 24 jam!"
	case remainingDays <= 7:
		data.UrgencyClass = "warning"
		data.UrgencyText = "Peringatan"
		data.CallToAction = "⚠️ Segera lakukan tindakan yang diperlukan!"
	}

	var b strings.Builder
	if err := expiryAlertTmpl.Execute(&b, data); err != nil {
		// The template is static and the data contains no user-controlled
		// template directives, so this only happens on a programming error.
		return fmt.Sprintf("Kontrak PKWT untuk %s (%s) akan segera berakhir (%d hari tersisa).",
			contract.Name, contract.Position, remainingDays)
	}

	return b.String()
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
