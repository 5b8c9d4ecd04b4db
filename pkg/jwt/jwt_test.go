package jwt_test

import (
	"time"

	tokenIssuer "msgboard/pkg/jwt"

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
			Subject:    "42",
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	Describe("Generate", func() {
		It("should carry subject, username and expiry claims", func() {
			now := time.Now()
			tokenIssuer.TimeNow = func() time.Time { return now }

			token := service.Generate(info)
			claims, ok := token.Claims.(jwt.MapClaims)
			Expect(ok).To(BeTrue())
			Expect(claims["sub"]).To(Equal("42"))
			Expect(claims["username"]).To(Equal("alice"))
			Expect(claims["iat"]).To(Equal(now.Unix()))
			Expect(claims["exp"]).To(Equal(now.Add(time.Hour).Unix()))
			Expect(token.Method).To(Equal(jwt.SigningMethodHS512))
		})
	})

	Describe("Validate", func() {
		var (
			signed string
			err    error
		)

		JustBeforeEach(func() {
			signed, err = service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())
		})

		When("the token is valid", func() {
			It("should return its claims", func() {
				claims, err := service.Validate(signed)
				Expect(err).NotTo(HaveOccurred())
				Expect(claims["sub"]).To(Equal("42"))
			})
		})

		When("the token was signed with another secret", func() {
			It("should return ErrTokenNotValid", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				_, err := other.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is expired", func() {
			BeforeEach(func() {
				tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-48 * time.Hour) }
			})

			It("should return ErrTokenExpired", func() {
				_, err := service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
			})
		})

		When("the token is garbage", func() {
			It("should return ErrTokenNotValid", func() {
				_, err := service.Validate("not.a.token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})
	})
})
