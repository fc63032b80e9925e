package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/amwangi254/campus_counsel/configs"
	"github.com/amwangi254/campus_counsel/database"
	"github.com/amwangi254/campus_counsel/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// GenerateConfirmationLetter renders a PDF confirmation for an accepted
// appointment, uploads it and stores the URL on the appointment row.
// Best effort: a failure is logged, never surfaced to the caller.
// The appointment must have Student and Counselor preloaded.
func GenerateConfirmationLetter(appointment models.Appointment) {
	htmlData, err := generateConfirmationHTML(appointment)
	if err != nil {
		log.Printf("🔥 Failed to generate confirmation HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, appointment.ID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload confirmation letter to Cloudinary: %v", err)
		return
	}

	if err := database.DB.Model(&models.Appointment{}).Where("id = ?", appointment.ID).
		Update("confirmation_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to store confirmation URL for appointment %s: %v", appointment.ID, err)
		return
	}

	log.Printf("✅ Generated confirmation letter for appointment %s.", appointment.ID)
}

func generateConfirmationHTML(appointment models.Appointment) (string, error) {
	tmpl, err := template.ParseFiles("templates/confirmation_letter.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName   string
		CounselorName string
		CounselorType string
		Date          string
		Time          string
		IssuedOn      string
	}{
		StudentName:   appointment.Student.Name,
		CounselorName: appointment.Counselor.Name,
		CounselorType: appointment.Counselor.CounselorType,
		Date:          appointment.Date,
		Time:          appointment.Time,
		IssuedOn:      time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, appointmentID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("confirmations/%s_%s", appointmentID, uuid.New().String()),
		Folder:       "counseling_confirmations",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
