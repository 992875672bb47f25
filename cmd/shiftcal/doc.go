// Command shiftcal reads OCR results of photographed shift schedules and
// prints the shifts they contain.
//
// Usage:
//
//	shiftcal parse response.json           # table on a terminal, JSON otherwise
//	shiftcal parse --events response.json  # calendar event bodies
//	shiftcal parse --message shift.hocr    # chat message text
//	shiftcal rows response.json            # reconstructed rows and their fate
//	shiftcal config sample                 # print the sample configuration
//
// Configuration is read from --config, SHIFTCAL_CONFIG, or the default
// locations listed in the sample. A .env file in the working directory is
// loaded before anything else.
package main
