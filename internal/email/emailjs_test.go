package email_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"receiptchain/internal/email"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EmailJSClient", func() {
	var (
		server       *httptest.Server
		client       *email.EmailJSClient
		statusCode   int
		responseBody string
		gotPath      string
		gotMethod    string
		gotBody      map[string]any
		notification email.ReceiptNotification
		privateKey   string
		err          error
	)

	BeforeEach(func() {
		statusCode = http.StatusOK
		responseBody = "OK"
		privateKey = ""
		gotBody = nil

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(statusCode)
			_, _ = w.Write([]byte(responseBody))
		}))

		notification = email.ReceiptNotification{
			Email:           "jane@example.com",
			ToName:          "Jane",
			ReceiptID:       "RCP-123456",
			Amount:          "1.5 USDC",
			Date:            "10/19/2026",
			TransactionHash: "0xabc",
			Purpose:         "Consulting",
			GeneratedDate:   "10/20/2026",
		}
	})

	AfterEach(func() {
		server.Close()
	})

	JustBeforeEach(func() {
		client = email.NewEmailJSClient(email.EmailJSOpts{
			APIURL:     server.URL + "/",
			ServiceID:  "service_x",
			TemplateID: "template_y",
			PublicKey:  "public_z",
			PrivateKey: privateKey,
		})
		err = client.Send(context.Background(), notification)
	})

	When("the relay accepts the message", func() {
		It("should post the template binding", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gotMethod).To(Equal(http.MethodPost))
			Expect(gotPath).To(Equal("/api/v1.0/email/send"))
			Expect(gotBody).To(HaveKeyWithValue("service_id", "service_x"))
			Expect(gotBody).To(HaveKeyWithValue("template_id", "template_y"))
			Expect(gotBody).To(HaveKeyWithValue("user_id", "public_z"))
			Expect(gotBody).NotTo(HaveKey("accessToken"))
			Expect(gotBody["template_params"]).To(Equal(map[string]any{
				"email":            "jane@example.com",
				"to_name":          "Jane",
				"receipt_id":       "RCP-123456",
				"amount":           "1.5 USDC",
				"date":             "10/19/2026",
				"transaction_hash": "0xabc",
				"purpose":          "Consulting",
				"generated_date":   "10/20/2026",
			}))
		})
	})

	When("a private key is configured", func() {
		BeforeEach(func() {
			privateKey = "secret"
		})

		It("should send it as the access token", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(gotBody).To(HaveKeyWithValue("accessToken", "secret"))
		})
	})

	When("the relay rejects the message", func() {
		BeforeEach(func() {
			statusCode = http.StatusBadRequest
			responseBody = "The template ID is invalid"
		})

		It("should return a send failure carrying the relay response", func() {
			Expect(err).To(MatchError(email.ErrSendFailed))
			Expect(err.Error()).To(ContainSubstring("status 400"))
			Expect(err.Error()).To(ContainSubstring("The template ID is invalid"))
		})
	})
})
