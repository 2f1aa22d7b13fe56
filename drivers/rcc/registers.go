// Package rcc holds register offsets and bitfields for the reset and clock
// control block (RCC) and the flash access control register of STM32L4 parts.
package rcc

const (
	// Base addresses (memory mapped).
	BaseRCC   = 0x4002_1000
	BaseFLASH = 0x4002_2000

	// --- RCC register offsets ---
	offCR          = 0x00
	offCFGR        = 0x08
	offPLLCFGR     = 0x0C
	offPLLSAI1CFGR = 0x10
	offPLLSAI2CFGR = 0x14
	offCCIPR       = 0x88
	offCRRCR       = 0x98

	// FLASH_ACR offset from BaseFLASH.
	offACR = 0x00
)

// RCC_CR
const (
	crMSION      = 1 << 0
	crMSIRDY     = 1 << 1
	crMSIRGSEL   = 1 << 3
	crMSIRANGEP  = 4
	crMSIRANGEM  = 0xF << crMSIRANGEP
	crHSION      = 1 << 8
	crHSIRDY     = 1 << 10
	crHSEON      = 1 << 16
	crHSERDY     = 1 << 17
	crHSEBYP     = 1 << 18
	crCSSON      = 1 << 19
	crPLLON      = 1 << 24
	crPLLRDY     = 1 << 25
	crPLLSAI1ON  = 1 << 26
	crPLLSAI1RDY = 1 << 27
	crPLLSAI2ON  = 1 << 28
	crPLLSAI2RDY = 1 << 29
)

// RCC_CFGR
const (
	cfgrSWP    = 0
	cfgrSWM    = 0x3 << cfgrSWP
	cfgrSWSP   = 2
	cfgrSWSM   = 0x3 << cfgrSWSP
	cfgrHPREP  = 4
	cfgrHPREM  = 0xF << cfgrHPREP
	cfgrPPRE1P = 8
	cfgrPPRE1M = 0x7 << cfgrPPRE1P
	cfgrPPRE2P = 11
	cfgrPPRE2M = 0x7 << cfgrPPRE2P
)

// RCC_PLLCFGR
const (
	pllSRCP  = 0
	pllSRCM  = 0x3 << pllSRCP
	pllMP    = 4
	pllMM    = 0x7 << pllMP
	pllNP    = 8
	pllNM    = 0x7F << pllNP
	pllPEN   = 1 << 16
	pllQEN   = 1 << 20
	pllREN   = 1 << 24
	pllRP    = 25
	pllRM    = 0x3 << pllRP
	pllAllEN = pllPEN | pllQEN | pllREN
)

// RCC_PLLSAI1CFGR / RCC_PLLSAI2CFGR share the N field and enable bit positions.
// PLLSAI2 has no Q output.
const (
	saiNP  = 8
	saiNM  = 0x7F << saiNP
	saiPEN = 1 << 16
	saiQEN = 1 << 20
	saiREN = 1 << 24
)

// RCC_CCIPR
const (
	ccipr48SELP = 26
	ccipr48SELM = 0x3 << ccipr48SELP
)

// RCC_CRRCR
const (
	crrcrHSI48ON  = 1 << 0
	crrcrHSI48RDY = 1 << 1
)

// FLASH_ACR
const (
	acrLATENCYP = 0
	acrLATENCYM = 0x7 << acrLATENCYP
)
