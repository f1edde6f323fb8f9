package email

// BaseTemplate wraps every email; content templates define "content".
const BaseTemplate = `{{define "base"}}<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin:0;padding:0;font-family:Georgia,serif;background:#faf7f2;color:#2d2a26;">
  <div style="max-width:600px;margin:0 auto;padding:32px 20px;">
    <h1 style="text-align:center;color:#b8860b;font-weight:normal;">Hafiportrait</h1>
    <div style="background:#ffffff;border-radius:8px;padding:28px;border:1px solid #eee3cf;">
      {{template "content" .}}
    </div>
    <p style="text-align:center;font-size:12px;color:#8a8378;">Jakarta, Indonesia</p>
  </div>
</body>
</html>{{end}}`

// InquiryReceivedTemplate notifies the studio about a contact form submission
const InquiryReceivedTemplate = `{{define "content"}}
<p>New inquiry from <strong>{{.Name}}</strong> &lt;{{.Email}}&gt;</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p style="white-space:pre-wrap;">{{.Message}}</p>
{{end}}`

// InquiryConfirmationTemplate thanks the sender
const InquiryConfirmationTemplate = `{{define "content"}}
<p>Hi {{.Name}},</p>
<p>Thank you for reaching out. We received your message "{{.Subject}}" and will get back to you within 24 hours.</p>
{{end}}`
