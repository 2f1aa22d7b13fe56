package rtcwut

// RTC block (RM0351 section 38.6).
const BaseRTC uintptr = 0x4000_2800

// Register offsets from BaseRTC.
const (
	offCR   = 0x08
	offISR  = 0x0C
	offWUTR = 0x14
	offWPR  = 0x24
)

// RTC_CR
const (
	crWUCKSELM = 0x7 << 0
	crWUCKSELP = 0
	crWUTE     = 1 << 10
	crWUTIE    = 1 << 14
)

// RTC_ISR
const (
	isrWUTWF = 1 << 2
	isrWUTF  = 1 << 10
)

const wutrWUTM = 0xFFFF

// Write-protection key sequence.
const (
	wprKey1 = 0xCA
	wprKey2 = 0x53
	wprLock = 0xFF
)
