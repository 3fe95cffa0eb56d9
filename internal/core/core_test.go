package core_test

import (
	"context"
	"errors"
	"receiptchain/internal/core"
	"receiptchain/internal/core/fake"
	"receiptchain/internal/repository"
	tokenIssuer "receiptchain/pkg/jwt"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("ReceiptChain accounts", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		receiptChain *core.ReceiptChain

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		receiptChain = core.NewReceiptChain(core.ReceiptChainOpts{
			Logs:      fakeLogger,
			Repo:      fakeRepo,
			JWTIssuer: fakeJWT,
		})

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			tokenInfo      tokenIssuer.TokenInfo
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hash, hashErr := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
			hashedPassword = string(hash)
			genToken = jwt.New(jwt.SigningMethodHS256)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}

			tokenInfo = tokenIssuer.TokenInfo{
				UserName:   authMsg.Username,
				Subject:    userId,
				Expiration: 24,
			}
		})

		JustBeforeEach(func() {
			token, err = receiptChain.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					ID:           userId,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserFromDBCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserFromDBArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenInfo))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(fakeJWT.GenerateCallCount()).To(Equal(0))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					ID:           userId,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetProfile", func() {
		var (
			profile core.Profile
			err     error
		)

		JustBeforeEach(func() {
			profile, err = receiptChain.GetProfile(ctx, "valid.token")
		})

		When("the user has a display name and email", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123"}, nil)
				fakeRepo.GetUserByIDReturns(repository.User{
					ID:          "user123",
					DisplayName: "Jane Doe",
					Email:       "jane@example.com",
				}, nil)
			})

			It("returns the stored profile", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(profile).To(Equal(core.Profile{Name: "Jane Doe", Email: "jane@example.com"}))
				Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("valid.token"))
				_, id := fakeRepo.GetUserByIDArgsForCall(0)
				Expect(id).To(Equal("user123"))
			})
		})

		When("the profile was never set", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123"}, nil)
				fakeRepo.GetUserByIDReturns(repository.User{ID: "user123"}, nil)
			})

			It("falls back to placeholders", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(profile).To(Equal(core.Profile{Name: "Guest User", Email: "No email set"}))
			})
		})

		When("token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("returns an invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.GetUserByIDCallCount()).To(Equal(0))
			})
		})

		When("token has no subject", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"name": "testuser"}, nil)
			})

			It("returns an invalid token error", func() {
				Expect(err).To(MatchError(core.ErrInvalidToken))
			})
		})

		When("user no longer exists", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123"}, nil)
				fakeRepo.GetUserByIDReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("returns user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})

	Describe("UpdateProfile", func() {
		var err error

		JustBeforeEach(func() {
			err = receiptChain.UpdateProfile(ctx, "valid.token", core.Profile{Name: "Jane", Email: "jane@example.com"})
		})

		When("update succeeds", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123"}, nil)
			})

			It("stores the new profile for the token subject", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.UpdateUserProfileCallCount()).To(Equal(1))
				_, id, name, email := fakeRepo.UpdateUserProfileArgsForCall(0)
				Expect(id).To(Equal("user123"))
				Expect(name).To(Equal("Jane"))
				Expect(email).To(Equal("jane@example.com"))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123"}, nil)
				fakeRepo.UpdateUserProfileReturns(fakeErr)
			})

			It("returns the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123"}, nil)
				fakeRepo.UpdateUserProfileReturns(repository.ErrUserNotFound)
			})

			It("returns user not found", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})
})
