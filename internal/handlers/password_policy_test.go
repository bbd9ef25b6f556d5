package handlers

import "testing"

func TestCheckPasswordPolicyTooShort(t *testing.T) {
	if msg := checkPasswordPolicy("abc12"); msg == "" {
		t.Fatal("expected rejection for short password")
	}
}

func TestCheckPasswordPolicyAllNumeric(t *testing.T) {
	if msg := checkPasswordPolicy("12345678"); msg == "" {
		t.Fatal("expected rejection for all-numeric password")
	}
}

func TestCheckPasswordPolicyAccepts(t *testing.T) {
	tests := []string{"correcthorse", "s3cret-pass", "ABCdef123"}
	for _, password := range tests {
		if msg := checkPasswordPolicy(password); msg != "" {
			t.Fatalf("expected %q to pass the policy, got %q", password, msg)
		}
	}
}
