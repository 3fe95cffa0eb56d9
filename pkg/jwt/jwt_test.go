package jwt_test

import (
	"time"

	tokenIssuer "receiptchain/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "user-1",
			Expiration: 24,
		}
		DeferCleanup(func() { tokenIssuer.TimeNow = time.Now })
	})

	It("round trips the subject and username", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("user-1"))
		Expect(claims["username"]).To(Equal("alice"))
	})

	It("signs with HS512", func() {
		Expect(service.Generate(info).Method).To(Equal(jwt.SigningMethodHS512))
	})

	It("rejects a token signed with another secret", func() {
		signed, err := tokenIssuer.NewJWTService([]byte("other")).Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects garbage", func() {
		_, err := service.Validate("not.a.token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects an expired token", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(25 * time.Hour) }

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})

	It("rejects a token from another issuer", func() {
		foreign := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"sub": "user-1",
			"iss": "someone-else",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := service.Sign(foreign)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})
})
