package audio

const (
	// DefaultSampleRate is the sample rate used when a request does not set one
	DefaultSampleRate = 44100
	// Channels is the number of audio channels (mono)
	Channels = 1
	// BitsPerSample is the PCM sample width
	BitsPerSample = 16
	// BlockAlign is the size of one frame in bytes (Channels * BitsPerSample / 8)
	BlockAlign = Channels * BitsPerSample / 8 // 2 bytes
	// VolumeScale is the fixed gain applied to every tone
	VolumeScale = 0.3
	// FullScale is the multiplier used to quantize [-1, 1] to 16-bit PCM
	FullScale = 32767
	// PCMFormat is the WAV audioFormat tag for uncompressed PCM
	PCMFormat = 1
	// HeaderSize is the size of a canonical RIFF/WAVE header in bytes
	HeaderSize = 44
	// MaxFrames is the largest frame count whose RIFF chunk size fits in 32 bits
	MaxFrames = (1<<32 - 1 - (HeaderSize - 8)) / BlockAlign
)
