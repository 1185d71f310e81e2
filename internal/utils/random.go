package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/swe-aircon-retailer/dispatch-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

var firstNames = []string{
	"Wei Jun", "Marcus", "Siti", "Priya", "Daniel", "Aisyah", "Jian Hao",
	"Kumar", "Grace", "Hafiz", "Mei Ling", "Ryan", "Nadia", "Zhi Wei", "Farah",
}
var lastNames = []string{
	"Tan", "Lim", "Lee", "Ng", "Rahman", "Nair", "Wong", "Chua", "Goh",
	"Ibrahim", "Koh", "Ong", "Teo", "Singh", "Chan",
}

func GenerateRandomFullName() string {
	return firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
}

var digits = "0123456789"

// GenerateUsernameFromFullName lowercases the name parts and appends a few
// digits so seeded usernames stay unique enough.
func GenerateUsernameFromFullName(fullName string) string {
	username := strings.ToLower(strings.ReplaceAll(fullName, " ", ""))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

var staffRoles = []domain.Role{
	domain.RoleDriver,
	domain.RoleTechnician,
}

func GenerateRandomStaffRole() domain.Role {
	return staffRoles[rand.Intn(len(staffRoles))]
}

var brands = []domain.Brand{
	domain.BrandDicon,
	domain.BrandMElectric,
	domain.BrandBoth,
}

func GenerateRandomBrand() domain.Brand {
	return brands[rand.Intn(len(brands))]
}

func GenerateRandomUser(password string, emailDomain string, annualLeaveDays int32) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	username := GenerateUsernameFromFullName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:             username,
		PasswordHash:         string(passwordHash),
		FullName:             fullName,
		Email:                username + "@" + emailDomain,
		Role:                 GenerateRandomStaffRole(),
		AnnualLeaveRemaining: annualLeaveDays,
	}
	if user.Role == domain.RoleTechnician {
		user.Brand = GenerateRandomBrand()
	}

	return user, nil
}
