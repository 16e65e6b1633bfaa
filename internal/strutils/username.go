package strutils

const (
	MIN_USERNAME_LENGTH = 2
	MAX_USERNAME_LENGTH = 16
)

// IsValidUsername checks that the username has the shape of a Minecraft
// username: 2-16 characters of letters, digits and underscores.
func IsValidUsername(username string) bool {
	length := 0
	for _, char := range username {
		isLetter := (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z')
		isDigit := char >= '0' && char <= '9'
		if !isLetter && !isDigit && char != '_' {
			return false
		}
		length++
	}
	return length >= MIN_USERNAME_LENGTH && length <= MAX_USERNAME_LENGTH
}
