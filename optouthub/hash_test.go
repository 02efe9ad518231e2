package optouthub

import "testing"

func TestHashEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		email      string
		wantMD5    string
		wantSHA256 string
	}{
		{
			name:       "plain address",
			email:      "user@example.com",
			wantMD5:    "b58996c504c5638798eb6b511e6f49af",
			wantSHA256: "b4c9a289323b21a01c3e940f150eb9b8c542587f1abfd8f0e1cc1ffc5e475514",
		},
		{
			name:       "uppercase and whitespace normalize to the same hash",
			email:      "  User@Example.COM ",
			wantMD5:    "b58996c504c5638798eb6b511e6f49af",
			wantSHA256: "b4c9a289323b21a01c3e940f150eb9b8c542587f1abfd8f0e1cc1ffc5e475514",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HashEmailMD5(tt.email); got != tt.wantMD5 {
				t.Errorf("HashEmailMD5() = %q, want %q", got, tt.wantMD5)
			}
			if got := HashEmailSHA256(tt.email); got != tt.wantSHA256 {
				t.Errorf("HashEmailSHA256() = %q, want %q", got, tt.wantSHA256)
			}
		})
	}
}
