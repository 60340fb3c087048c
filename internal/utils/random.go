package utils

import (
	"fmt"
	"math/rand"

	"golang.org/x/crypto/bcrypt"

	"github.com/MyRealChoco/ArbeitMate/internal/domain"
)

var commonSurnames = []string{
	"김", "이", "박", "최", "정", "강", "조", "윤", "장", "임",
	"한", "오", "서", "신", "권", "황", "안", "송", "전", "홍",
}
var commonNameSyllables = []string{
	"민", "서", "지", "수", "현", "영", "준", "우", "은", "하",
	"도", "연", "주", "윤", "성", "진", "아", "예", "태", "빈",
	"경", "석", "호", "정", "재", "유", "소", "찬", "다", "원",
}

func GenerateRandomKoreanName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	name := ""

	for i := 0; i < 2; i++ {
		name += commonNameSyllables[rand.Intn(len(commonNameSyllables))]
	}
	return surname + name
}

var digits = "0123456789"
var lowercase = "abcdefghijklmnopqrstuvwxyz"

// GenerateRandomEmail 은 시드용 이메일 주소를 만든다. 한글 이름은
// 이메일 로컬 파트로 쓸 수 없으므로 무작위 영문 아이디를 쓴다.
func GenerateRandomEmail(domainName string) string {
	localLength := rand.Intn(6) + 6
	local := make([]byte, localLength)
	for i := range local {
		local[i] = lowercase[rand.Intn(len(lowercase))]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local = append(local, digits[rand.Intn(len(digits))])
	}

	return string(local) + "@" + domainName
}

func GenerateRandomMember(password string, emailDomainName string) (*domain.Member, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		Name:         GenerateRandomKoreanName(),
		Email:        GenerateRandomEmail(emailDomainName),
		PasswordHash: string(passwordHash),
	}

	return member, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}
