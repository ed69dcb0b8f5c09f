package email

import (
	"fmt"
	"time"
)

// StaffWelcomeData contains the data needed for the staff welcome email.
type StaffWelcomeData struct {
	FirstName    string
	Email        string
	BranchName   string
	TempPassword string
	LoginURL     string
	AppName      string
}

// BuildStaffWelcomeEmail creates the onboarding email for a newly created
// staff account.
func BuildStaffWelcomeEmail(data StaffWelcomeData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "X-Ear"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "Merhaba"
	}

	subject := fmt.Sprintf("%s hesabınız oluşturuldu", appName)

	textBody := fmt.Sprintf(`Merhaba %s,

%s şubesi için %s hesabınız oluşturuldu.

Geçici şifreniz: %s

İlk girişten sonra şifrenizi değiştirmeniz gerekmektedir.

Giriş: %s

%s Ekibi`, firstName, data.BranchName, appName, data.TempPassword, data.LoginURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>%s hesabınız oluşturuldu</h2>
  <p>Merhaba %s,</p>
  <p><strong>%s</strong> şubesi için hesabınız hazır.</p>
  <p>Geçici şifreniz: <code>%s</code></p>
  <p>İlk girişten sonra şifrenizi değiştirmeniz gerekmektedir.</p>
  <p><a href="%s">Giriş yap</a></p>
  <p>%s Ekibi</p>
</body>
</html>`, appName, firstName, data.BranchName, data.TempPassword, data.LoginURL, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// AppointmentReminderData contains the data needed for reminder emails.
type AppointmentReminderData struct {
	PatientName string
	Email       string
	BranchName  string
	ScheduledAt time.Time
	Kind        string
	AppName     string
}

var appointmentKindTR = map[string]string{
	"first_visit": "İlk Muayene",
	"fitting":     "Cihaz Uygulaması",
	"control":     "Kontrol",
	"repair":      "Tamir",
	"other":       "Randevu",
}

// BuildAppointmentReminderEmail creates a reminder for an upcoming
// appointment.
func BuildAppointmentReminderEmail(data AppointmentReminderData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "X-Ear"
	}

	kind := appointmentKindTR[data.Kind]
	if kind == "" {
		kind = "Randevu"
	}

	when := data.ScheduledAt.Format("02.01.2006 15:04")
	subject := fmt.Sprintf("Randevu hatırlatması: %s, %s", kind, when)

	textBody := fmt.Sprintf(`Sayın %s,

%s şubesindeki randevunuzu hatırlatırız.

Tür: %s
Tarih: %s

Gelemeyecekseniz lütfen şubemizi arayarak bilgi veriniz.

%s`, data.PatientName, data.BranchName, kind, when, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Randevu Hatırlatması</h2>
  <p>Sayın %s,</p>
  <p><strong>%s</strong> şubesindeki randevunuzu hatırlatırız.</p>
  <ul>
    <li>Tür: %s</li>
    <li>Tarih: %s</li>
  </ul>
  <p>Gelemeyecekseniz lütfen şubemizi arayarak bilgi veriniz.</p>
  <p>%s</p>
</body>
</html>`, data.PatientName, data.BranchName, kind, when, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// DocumentShareData contains the data needed for the document share email.
type DocumentShareData struct {
	PatientName string
	Email       string
	FileName    string
	DownloadURL string
	ExpiryHours int
	AppName     string
}

// BuildDocumentShareEmail creates an email carrying a time-limited download
// link for a patient document.
func BuildDocumentShareEmail(data DocumentShareData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "X-Ear"
	}

	subject := fmt.Sprintf("Belgeniz hazır: %s", data.FileName)

	textBody := fmt.Sprintf(`Sayın %s,

Talep ettiğiniz belge hazır: %s

İndirme bağlantısı (%d saat geçerli):
%s

%s`, data.PatientName, data.FileName, data.ExpiryHours, data.DownloadURL, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>Belgeniz hazır</h2>
  <p>Sayın %s,</p>
  <p>Talep ettiğiniz belge: <strong>%s</strong></p>
  <p><a href="%s">İndir</a> (bağlantı %d saat geçerlidir)</p>
  <p>%s</p>
</body>
</html>`, data.PatientName, data.FileName, data.DownloadURL, data.ExpiryHours, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
