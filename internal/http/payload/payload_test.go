package payload_test

import (
	"net/http/httptest"
	"receiptchain/internal/core"
	"receiptchain/internal/http/payload"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Payload", func() {
	const validHash = "0x9b1a2f0c4b0c6e5f8f0f1d7c4f2f3a7e6f5d4c3b2a1908f7e6d5c4b3a2918f7e"

	Describe("DecodeValidator", func() {
		var (
			dv   payload.DecodeValidator
			body string
			auth payload.AuthRequest
			err  error
		)

		BeforeEach(func() {
			auth = payload.AuthRequest{}
			body = `{"username":"alice","password":"secret"}`
		})

		JustBeforeEach(func() {
			req := httptest.NewRequest("POST", "/receiptchain/authenticate", strings.NewReader(body))
			err = dv.DecodeJSONPayload(req, &auth)
		})

		When("the payload is valid", func() {
			It("decodes it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(auth.ToMessage()).To(Equal(core.AuthMessage{Username: "alice", Password: "secret"}))
			})
		})

		When("the payload has unknown fields", func() {
			BeforeEach(func() {
				body = `{"username":"alice","password":"secret","admin":true}`
			})

			It("rejects it", func() {
				Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
			})
		})

		When("the payload is not json", func() {
			BeforeEach(func() {
				body = `username=alice`
			})

			It("rejects it", func() {
				Expect(err).To(HaveOccurred())
			})
		})

		When("a required field is missing", func() {
			BeforeEach(func() {
				body = `{"username":"alice"}`
			})

			It("fails validation", func() {
				Expect(err).To(MatchError(ContainSubstring("validating payload")))
				Expect(err.Error()).To(ContainSubstring("password"))
			})
		})
	})

	Describe("TransactionRequest", func() {
		DescribeTable("Validate",
			func(hash string, valid bool) {
				err := payload.TransactionRequest{TxHash: hash}.Validate()
				if valid {
					Expect(err).NotTo(HaveOccurred())
				} else {
					Expect(err).To(HaveOccurred())
				}
			},
			Entry("lower case hash", validHash, true),
			Entry("upper case prefix", "0X"+validHash[2:], false),
			Entry("upper case hex digits", "0x"+strings.ToUpper(validHash[2:]), true),
			Entry("missing prefix", validHash[2:], false),
			Entry("too short", validHash[:20], false),
			Entry("non hex", "0x"+strings.Repeat("g", 64), false),
			Entry("empty", "", false),
		)
	})

	Describe("ReceiptRequest", func() {
		var req payload.ReceiptRequest

		BeforeEach(func() {
			req = payload.ReceiptRequest{
				TxHash:        validHash,
				Amount:        "12.5 USDC",
				Date:          "3/15/2024",
				CustomerName:  "Jane Doe",
				CustomerEmail: "jane@example.com",
				Purpose:       "Consulting",
			}
		})

		It("accepts a complete form", func() {
			Expect(req.Validate()).To(Succeed())
			Expect(req.ToForm()).To(Equal(core.ReceiptForm{
				TxHash:        validHash,
				Amount:        "12.5 USDC",
				Date:          "3/15/2024",
				CustomerName:  "Jane Doe",
				CustomerEmail: "jane@example.com",
				Purpose:       "Consulting",
			}))
		})

		It("rejects a malformed email", func() {
			req.CustomerEmail = "not-an-email"
			Expect(req.Validate()).To(MatchError(ContainSubstring("customerEmail")))
		})

		It("rejects a missing purpose", func() {
			req.Purpose = ""
			Expect(req.Validate()).To(MatchError(ContainSubstring("purpose")))
		})

		It("rejects a bad hash", func() {
			req.TxHash = "0x1"
			Expect(req.Validate()).To(MatchError(ContainSubstring("txHash")))
		})

		It("rejects an amount longer than the stored column", func() {
			req.Amount = strings.Repeat("9", 96) + " USDC"
			Expect(req.Validate()).To(MatchError(ContainSubstring("amount")))
		})

		It("accepts an amount that fills the stored column", func() {
			req.Amount = strings.Repeat("9", 95) + " USDC"
			Expect(req.Validate()).To(Succeed())
		})

		It("rejects a date longer than the stored column", func() {
			req.Date = strings.Repeat("1", 33)
			Expect(req.Validate()).To(MatchError(ContainSubstring("date")))
		})
	})

	Describe("ProfileRequest", func() {
		It("allows clearing the profile", func() {
			Expect(payload.ProfileRequest{}.Validate()).To(Succeed())
		})

		It("rejects a malformed email", func() {
			Expect(payload.ProfileRequest{Name: "Jane", Email: "jane"}.Validate()).To(HaveOccurred())
		})

		It("maps to a core profile", func() {
			Expect(payload.ProfileRequest{Name: "Jane", Email: "jane@example.com"}.ToProfile()).
				To(Equal(core.Profile{Name: "Jane", Email: "jane@example.com"}))
		})
	})
})
