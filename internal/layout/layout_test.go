package layout

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		width     float64
		height    float64
		isDesktop bool
		want      Descriptor
	}{
		{
			name:      "desktop wins regardless of width",
			width:     900,
			height:    600,
			isDesktop: true,
			want: Descriptor{
				ContentPadding:  32,
				MaxContentWidth: 900,
				DetailColumns:   4,
				IsWideScreen:    true,
				IsMultiColumn:   true,
				IsDesktop:       true,
				WindowWidth:     900,
				WindowHeight:    600,
			},
		},
		{
			name:   "large tablet",
			width:  1100,
			height: 800,
			want: Descriptor{
				ContentPadding:  40,
				MaxContentWidth: 800,
				DetailColumns:   4,
				IsWideScreen:    true,
				IsMultiColumn:   true,
				WindowWidth:     1100,
				WindowHeight:    800,
			},
		},
		{
			name:   "tablet landscape",
			width:  700,
			height: 500,
			want: Descriptor{
				ContentPadding:  28,
				MaxContentWidth: 700,
				DetailColumns:   4,
				IsWideScreen:    true,
				IsMultiColumn:   true,
				WindowWidth:     700,
				WindowHeight:    500,
			},
		},
		{
			name:   "small tablet portrait",
			width:  650,
			height: 900,
			want: Descriptor{
				ContentPadding:  24,
				MaxContentWidth: 600,
				DetailColumns:   2,
				IsWideScreen:    true,
				IsMultiColumn:   false,
				WindowWidth:     650,
				WindowHeight:    900,
			},
		},
		{
			name:   "phone",
			width:  390,
			height: 844,
			want: Descriptor{
				ContentPadding:  16,
				MaxContentWidth: 0,
				DetailColumns:   2,
				WindowWidth:     390,
				WindowHeight:    844,
			},
		},
		{
			name:   "exact 600 boundary",
			width:  600,
			height: 800,
			want: Descriptor{
				ContentPadding:  24,
				MaxContentWidth: 600,
				DetailColumns:   2,
				IsWideScreen:    true,
				IsMultiColumn:   false,
				WindowWidth:     600,
				WindowHeight:    800,
			},
		},
		{
			name:   "exact 1024 boundary",
			width:  1024,
			height: 768,
			want: Descriptor{
				ContentPadding:  40,
				MaxContentWidth: 800,
				DetailColumns:   4,
				IsWideScreen:    true,
				IsMultiColumn:   true,
				WindowWidth:     1024,
				WindowHeight:    768,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.width, tt.height, tt.isDesktop)
			if got != tt.want {
				t.Errorf("Resolve(%v, %v, %v) = %+v, want %+v",
					tt.width, tt.height, tt.isDesktop, got, tt.want)
			}
		})
	}
}
